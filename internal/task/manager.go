package task

import "github.com/xhofe/tache"

// GetByCondition get tasks under specific condition
func GetByCondition[T tache.Task](m *tache.Manager[T], condition func(T) bool) []T {
	allTasks := m.GetAll()
	var ret []T
	for _, task := range allTasks {
		if condition(task) {
			ret = append(ret, task)
		}
	}
	return ret
}

// RemoveByCondition remove tasks under specific condition
func RemoveByCondition[T tache.Task](m *tache.Manager[T], condition func(T) bool) {
	tasks := GetByCondition(m, condition)
	for _, task := range tasks {
		m.Remove(task.GetID())
	}
}
