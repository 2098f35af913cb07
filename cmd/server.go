package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	log "github.com/sirupsen/logrus"

	"github.com/arcfs-org/arcfs/internal/conf"
	"github.com/arcfs-org/arcfs/internal/vfs"
	"github.com/arcfs-org/arcfs/server"
)

var ServerCmd = &cobra.Command{
	Use:   "server <archive>",
	Short: "Serve one archive over HTTP",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		// Download throttling happens at the HTTP edge; the handler
		// itself streams unthrottled.
		h, err := vfs.Open(args[0], vfs.OpenOptions{Verify: flagVerify}, vfs.WithLimiter(nil))
		if err != nil {
			log.Fatalf("open %s: %+v", args[0], err)
		}
		defer h.Close()
		r := server.Init(h, args[0])
		addr := fmt.Sprintf("%s:%d", conf.Conf.Scheme.Address, conf.Conf.Scheme.HttpPort)
		log.Infof("serving %s on %s", args[0], addr)
		if err := r.Run(addr); err != nil {
			log.Fatalf("server: %+v", err)
		}
	},
}

func init() {
	ServerCmd.Flags().BoolVar(&flagVerify, "verify", false, "verify archive integrity while loading")
	RootCmd.AddCommand(ServerCmd)
}
