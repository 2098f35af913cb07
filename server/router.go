package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/arcfs-org/arcfs/internal/conf"
	"github.com/arcfs-org/arcfs/internal/stream"
	"github.com/arcfs-org/arcfs/internal/vfs"
	"github.com/arcfs-org/arcfs/server/handles"
	"github.com/arcfs-org/arcfs/server/middlewares"
)

// Init builds the HTTP surface over one opened archive.
func Init(h *vfs.Handler, archivePath string) *gin.Engine {
	handles.SetArchive(h, archivePath)

	r := gin.New()
	r.Use(gin.LoggerWithWriter(gin.DefaultWriter, "/ping"))
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middlewares.MaxAllowed(conf.Conf.MaxConcurrency))

	r.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})

	api := r.Group("/api")
	api.GET("/ls", handles.FsList)
	api.GET("/meta", handles.FsMeta)
	api.POST("/extract", handles.FsExtract)
	api.POST("/extract_all", handles.FsExtractAll)
	api.POST("/add", middlewares.UploadRateLimiter(stream.UploadLimit), handles.FsAdd)
	api.POST("/write", handles.FsWrite)
	api.POST("/close", handles.FsClose)
	api.GET("/extensions", handles.ArchiveExtensions)
	api.GET("/tasks", handles.TaskList)
	api.POST("/tasks/clear_done", handles.TaskClearDone)

	r.GET("/d/*path", middlewares.DownloadRateLimiter(stream.DownloadLimit), handles.Down)

	return r
}
