package api

import (
	"fmt"
	"net/http"
)

// NoUpdateFieldsMessage is returned when an update request carries no new value.
const NoUpdateFieldsMessage = "No fields have been requested to be updated. Please specify fields to update"

// Response is the envelope every handler operation resolves with. Body is
// either a message string or a serialized entity.
type Response struct {
	Body   any
	Status int
}

func entityResponse(entity Entity, status int) Response {
	return Response{Body: entity.Serialize(), Status: status}
}

func messageResponse(message string, status int) Response {
	return Response{Body: message, Status: status}
}

func deletedResponse(name string, id uint) Response {
	return messageResponse(fmt.Sprintf("%s with ID %d successfully deleted", name, id), http.StatusOK)
}

func conflictResponse(name string, err error) Response {
	return messageResponse(fmt.Sprintf("%s deleted before update could be completed - %s", name, err.Error()), http.StatusConflict)
}
