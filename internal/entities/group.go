package entities

// StudyGroup owns decks through their group ID. Only the group name is mutable.
type StudyGroup struct {
	id        uint
	groupName string
}

// SerializedStudyGroup is the API representation of a StudyGroup.
type SerializedStudyGroup struct {
	ID        uint   `json:"id"`
	GroupName string `json:"groupName"`
}

func NewStudyGroup(id uint, groupName string) StudyGroup {
	return StudyGroup{id: id, groupName: groupName}
}

func (g StudyGroup) ID() uint          { return g.id }
func (g StudyGroup) GroupName() string { return g.groupName }

// WithGroupName returns a copy of the group carrying the new name.
func (g StudyGroup) WithGroupName(groupName string) StudyGroup {
	g.groupName = groupName
	return g
}

func (g StudyGroup) Serialize() any {
	return SerializedStudyGroup{ID: g.id, GroupName: g.groupName}
}
