package departmentprovider

import (
	"proposal-approval-backend/db"
	departmentstore "proposal-approval-backend/lib/dicts/department/store"
	dictapimodels "proposal-approval-backend/models/api/dict"
)

type Provider interface {
	List() ([]dictapimodels.DepartmentView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: departmentstore.NewInstance(db.DB),
	}
}

type impl struct {
	store departmentstore.Provider
}

func (i impl) List() ([]dictapimodels.DepartmentView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.DepartmentView, 0, len(list))
	for _, rec := range list {
		result = append(result, dictapimodels.DepartmentConvert(rec))
	}
	return result, nil
}
