package cmd

import (
	"github.com/arcfs-org/arcfs/internal/bootstrap"
	"github.com/arcfs-org/arcfs/internal/conf"
	"github.com/arcfs-org/arcfs/internal/task"

	_ "github.com/arcfs-org/arcfs/internal/archive/sevenzip"
	_ "github.com/arcfs-org/arcfs/internal/archive/zip"
)

// Init runs the bootstrap sequence shared by every command.
func Init() {
	bootstrap.InitConfig(flagConfig)
	bootstrap.InitLog(flagDebug)
	bootstrap.InitStreamLimit()
	task.InitTaskManager(conf.Conf.TaskWorkers)
}
