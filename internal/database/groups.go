package database

import "github.com/mrlokans/studygroups/internal/entities"

func (d *Database) GetStudyGroup(id uint) (entities.StudyGroup, error) {
	row, err := findRow[studyGroupRow](d.DB, "study group", id)
	if err != nil {
		return entities.StudyGroup{}, err
	}
	return row.toEntity(), nil
}

func (d *Database) CreateStudyGroup(groupName string) (entities.StudyGroup, error) {
	row := studyGroupRow{GroupName: groupName}
	if err := insertRow(d.DB, "study group", &row); err != nil {
		return entities.StudyGroup{}, err
	}
	return row.toEntity(), nil
}

// DeleteStudyGroup removes the group only; its decks keep their group ID.
func (d *Database) DeleteStudyGroup(id uint) error {
	return deleteRow[studyGroupRow](d.DB, "study group", id)
}

func (d *Database) UpdateStudyGroup(group entities.StudyGroup) (entities.StudyGroup, error) {
	row, err := updateColumn(d.DB, "study group", group.ID(), "group_name", group.GroupName(), func(r *studyGroupRow) {
		r.GroupName = group.GroupName()
	})
	if err != nil {
		return entities.StudyGroup{}, err
	}
	return row.toEntity(), nil
}
