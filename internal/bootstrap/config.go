package bootstrap

import (
	"os"

	"github.com/caarlos0/env/v9"
	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"

	"github.com/arcfs-org/arcfs/internal/conf"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// InitConfig loads defaults, overlays the optional JSON config file,
// then environment variables prefixed ARCFS_.
func InitConfig(configFile string) {
	conf.Conf = conf.DefaultConfig()
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			log.Fatalf("reading config file failed: %v", err)
		}
		if err = json.Unmarshal(data, conf.Conf); err != nil {
			log.Fatalf("parsing config file failed: %v", err)
		}
	}
	if err := env.ParseWithOptions(conf.Conf, env.Options{Prefix: "ARCFS_"}); err != nil {
		log.Fatalf("loading config from env failed: %v", err)
	}
	log.Debugf("config: %+v", conf.Conf)
}
