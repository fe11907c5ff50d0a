package api

import (
	"net/http"

	"github.com/mrlokans/studygroups/internal/storage"
)

// Entity is anything the handler can put in a response body.
type Entity interface {
	Serialize() any
}

// resource describes one entity kind to the generic CRUD flow: how to reach
// it in the store and which field an update may change.
type resource[T Entity] struct {
	name string // used in response messages, e.g. "StudyGroup"
	noun string // used in error descriptions, e.g. "study group"

	get        func(id uint) (T, error)
	remove     func(id uint) error
	update     func(entity T) (T, error)
	setContent func(entity T, value string) T
}

func (r resource[T]) Get(id uint) (Response, error) {
	entity, err := r.get(id)
	if err == nil {
		return entityResponse(entity, http.StatusOK), nil
	}

	switch storage.KindOf(err) {
	case storage.KindNotFound:
		return messageResponse(err.Error(), http.StatusNotFound), nil
	case storage.KindInternal:
		return messageResponse(err.Error(), http.StatusInternalServerError), nil
	default:
		return Response{}, unknown("getting "+r.noun+" from database", err)
	}
}

func (r resource[T]) Create(create func() (T, error)) (Response, error) {
	entity, err := create()
	if err == nil {
		return entityResponse(entity, http.StatusCreated), nil
	}

	switch storage.KindOf(err) {
	case storage.KindInternal:
		return messageResponse(err.Error(), http.StatusInternalServerError), nil
	default:
		return Response{}, unknown("creating "+r.noun+" in database", err)
	}
}

func (r resource[T]) Delete(id uint) (Response, error) {
	err := r.remove(id)
	if err == nil {
		return deletedResponse(r.name, id), nil
	}

	switch storage.KindOf(err) {
	case storage.KindNotFound:
		return messageResponse(err.Error(), http.StatusNotFound), nil
	case storage.KindInternal:
		return messageResponse(err.Error(), http.StatusInternalServerError), nil
	default:
		return Response{}, unknown("deleting "+r.noun+" from database", err)
	}
}

// Update fetches the entity, changes its content field to value and persists
// it. A nil value short-circuits without touching the store.
func (r resource[T]) Update(id uint, value *string) (Response, error) {
	if value == nil {
		return messageResponse(NoUpdateFieldsMessage, http.StatusBadRequest), nil
	}

	existing, err := r.get(id)
	if err != nil {
		switch storage.KindOf(err) {
		case storage.KindNotFound:
			return messageResponse(err.Error(), http.StatusNotFound), nil
		case storage.KindInternal:
			return messageResponse(err.Error(), http.StatusInternalServerError), nil
		default:
			return Response{}, unknown("getting "+r.noun+" from database for update", err)
		}
	}

	updated, err := r.update(r.setContent(existing, *value))
	if err == nil {
		return entityResponse(updated, http.StatusOK), nil
	}

	switch storage.KindOf(err) {
	case storage.KindNotFound:
		return conflictResponse(r.name, err), nil
	case storage.KindInternal:
		return messageResponse(err.Error(), http.StatusInternalServerError), nil
	default:
		return Response{}, unknown("updating "+r.noun+" in database", err)
	}
}
