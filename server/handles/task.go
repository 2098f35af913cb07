package handles

import (
	"github.com/gin-gonic/gin"
	"github.com/xhofe/tache"

	"github.com/arcfs-org/arcfs/internal/task"
	"github.com/arcfs-org/arcfs/pkg/utils"
	"github.com/arcfs-org/arcfs/server/common"
)

type TaskInfo struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	State    string  `json:"state"`
	Progress float64 `json:"progress"`
	Error    string  `json:"error,omitempty"`
}

func stateString(s tache.State) string {
	switch s {
	case tache.StatePending:
		return "pending"
	case tache.StateRunning:
		return "running"
	case tache.StateSucceeded:
		return "succeeded"
	case tache.StateFailed:
		return "failed"
	case tache.StateCanceling:
		return "canceling"
	case tache.StateCanceled:
		return "canceled"
	case tache.StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

func toTaskInfo(t *task.ExtractAllTask) TaskInfo {
	info := TaskInfo{
		ID:       t.GetID(),
		Name:     t.GetName(),
		State:    stateString(t.GetState()),
		Progress: t.GetProgress(),
	}
	if err := t.GetErr(); err != nil {
		info.Error = err.Error()
	}
	return info
}

func TaskList(c *gin.Context) {
	infos, _ := utils.SliceConvert(task.ExtractAllTaskManager.GetAll(), func(t *task.ExtractAllTask) (TaskInfo, error) {
		return toTaskInfo(t), nil
	})
	common.SuccessResp(c, infos)
}

// TaskClearDone removes finished tasks from the manager.
func TaskClearDone(c *gin.Context) {
	task.RemoveByCondition(task.ExtractAllTaskManager, func(t *task.ExtractAllTask) bool {
		state := t.GetState()
		return state == tache.StateSucceeded || state == tache.StateFailed || state == tache.StateCanceled
	})
	common.SuccessResp(c)
}
