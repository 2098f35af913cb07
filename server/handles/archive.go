package handles

import (
	"net/http"
	"os"
	stdpath "path"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/arcfs-org/arcfs/internal/archive/tool"
	"github.com/arcfs-org/arcfs/internal/errs"
	"github.com/arcfs-org/arcfs/internal/stream"
	"github.com/arcfs-org/arcfs/internal/task"
	"github.com/arcfs-org/arcfs/internal/vfs"
	"github.com/arcfs-org/arcfs/pkg/utils"
	"github.com/arcfs-org/arcfs/server/common"
)

var (
	archive     *vfs.Handler
	archivePath string
)

// SetArchive binds the handlers to the archive opened for this run.
func SetArchive(h *vfs.Handler, path string) {
	archive = h
	archivePath = path
}

type ListReq struct {
	Path string `json:"path" form:"path"`
}

type ListResp struct {
	Content []string `json:"content"`
	Total   int      `json:"total"`
}

func FsList(c *gin.Context) {
	var req ListReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	names, err := archive.ReadDir(utils.FixAndCleanPath(req.Path))
	if err != nil {
		common.ErrorResp(c, err, 500)
		return
	}
	common.SuccessResp(c, ListResp{Content: names, Total: len(names)})
}

type ExtractReq struct {
	Path    string `json:"path" form:"path"`
	DestDir string `json:"dest_dir" form:"dest_dir"`
}

func FsExtract(c *gin.Context) {
	var req ExtractReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	err := archive.ExtractFile(utils.FixAndCleanPath(req.Path), req.DestDir)
	if err != nil {
		if errs.IsObjectNotFound(err) {
			common.ErrorResp(c, err, 404)
		} else {
			common.ErrorResp(c, err, 500, true)
		}
		return
	}
	common.SuccessResp(c)
}

type ExtractAllReq struct {
	DestDir string `json:"dest_dir" form:"dest_dir"`
}

func FsExtractAll(c *gin.Context) {
	var req ExtractAllReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	t := &task.ExtractAllTask{
		Handler:     archive,
		ArchivePath: archivePath,
		DestDir:     req.DestDir,
	}
	task.ExtractAllTaskManager.Add(t)
	common.SuccessResp(c, gin.H{"task_id": t.GetID()})
}

// Down streams one file from the archive. The stream handle is returned
// before extraction completes, so failures after the first written byte
// can only cut the connection.
func Down(c *gin.Context) {
	path := utils.FixAndCleanPath(c.Param("path"))
	fs := archive.ReadFile(path)
	// Close on every exit path so a dropped client cannot leave the
	// producer blocked on backpressure.
	defer fs.Close()
	wroteHeader := false
	for ev := range fs.Events() {
		switch ev.Type {
		case stream.EventData:
			if !wroteHeader {
				c.Header("Content-Disposition", `attachment; filename="`+stdpath.Base(path)+`"`)
				c.Status(http.StatusOK)
				wroteHeader = true
			}
			if _, err := c.Writer.Write(ev.Data); err != nil {
				log.Debugf("client dropped download of %s: %v", path, err)
				return
			}
			c.Writer.Flush()
		case stream.EventError:
			if wroteHeader {
				log.Errorf("stream of %s failed mid-flight: %+v", path, ev.Err)
				return
			}
			if errs.IsObjectNotFound(ev.Err) {
				common.ErrorResp(c, ev.Err, 404)
			} else {
				common.ErrorResp(c, ev.Err, 500, true)
			}
			return
		case stream.EventEnd:
			if !wroteHeader {
				c.Status(http.StatusOK)
			}
			return
		}
	}
}

type AddReq struct {
	Path string `form:"path"`
}

// FsAdd receives an uploaded file and records it in the tree at the
// requested virtual path. The upload is spooled next to the system temp
// dir; its content ref stays valid until Write persists it.
func FsAdd(c *gin.Context) {
	var req AddReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	spool := stdpath.Join(os.TempDir(), "arcfs-upload-"+uuid.NewString())
	if err = c.SaveUploadedFile(file, spool); err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	if err = archive.AddFile(utils.FixAndCleanPath(req.Path), spool); err != nil {
		common.ErrorResp(c, err, 500)
		return
	}
	common.SuccessResp(c)
}

func FsWrite(c *gin.Context) {
	if err := archive.Write(); err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c)
}

func FsClose(c *gin.Context) {
	if err := archive.Close(); err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c)
}

func ArchiveExtensions(c *gin.Context) {
	common.SuccessResp(c, tool.Extensions())
}

type MetaResp struct {
	Comment   string `json:"comment"`
	Encrypted bool   `json:"encrypted"`
	State     string `json:"state"`
}

// FsMeta reports container-level details that the entry listing omits.
func FsMeta(c *gin.Context) {
	m := archive.Meta()
	common.SuccessResp(c, MetaResp{
		Comment:   m.GetComment(),
		Encrypted: m.IsEncrypted(),
		State:     archive.State().String(),
	})
}
