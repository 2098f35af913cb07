package bootstrap

import (
	"golang.org/x/time/rate"

	"github.com/arcfs-org/arcfs/internal/conf"
	"github.com/arcfs-org/arcfs/internal/stream"
)

func filterNegative(limit int) (rate.Limit, int) {
	if limit < 0 {
		return rate.Inf, 0
	}
	return rate.Limit(limit), limit
}

func initLimiter(limiter **rate.Limiter, setting int) {
	limit, burst := filterNegative(setting)
	*limiter = rate.NewLimiter(limit, burst)
}

func InitStreamLimit() {
	initLimiter(&stream.DownloadLimit, conf.Conf.MaxDownloadRate)
	initLimiter(&stream.UploadLimit, conf.Conf.MaxUploadRate)
}
