package dictapimodels

import (
	dbmodels "proposal-approval-backend/models/db"
)

type DepartmentView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func DepartmentConvert(rec dbmodels.Department) DepartmentView {
	return DepartmentView{
		ID:   rec.ID,
		Name: rec.Name,
	}
}
