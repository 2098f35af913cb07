package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	log "github.com/sirupsen/logrus"

	"github.com/arcfs-org/arcfs/internal/vfs"
	"github.com/arcfs-org/arcfs/pkg/utils"
)

var flagVerify bool

func mustOpen(path string, create bool) *vfs.Handler {
	h, err := vfs.Open(path, vfs.OpenOptions{Create: create, Verify: flagVerify})
	if err != nil {
		log.Fatalf("open %s: %+v", path, err)
	}
	return h
}

var LsCmd = &cobra.Command{
	Use:   "ls <archive> [path]",
	Short: "List entries of a directory inside an archive",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		h := mustOpen(args[0], false)
		defer h.Close()
		dir := ""
		if len(args) > 1 {
			dir = args[1]
		}
		names, err := h.ReadDir(dir)
		if err != nil {
			log.Fatalf("%+v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

var CatCmd = &cobra.Command{
	Use:   "cat <archive> <path>",
	Short: "Stream one file from an archive to stdout",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		h := mustOpen(args[0], false)
		defer h.Close()
		fs := h.ReadFile(args[1])
		defer fs.Close()
		if _, err := io.Copy(os.Stdout, fs); err != nil {
			log.Fatalf("%+v", err)
		}
	},
}

var ExtractCmd = &cobra.Command{
	Use:   "extract <archive> <path> <dest-dir>",
	Short: "Extract one file from an archive",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		h := mustOpen(args[0], false)
		defer h.Close()
		if err := h.ExtractFile(args[1], args[2]); err != nil {
			log.Fatalf("%+v", err)
		}
	},
}

var ExtractAllCmd = &cobra.Command{
	Use:   "extract-all <archive> <dest-dir>",
	Short: "Extract a whole archive",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		h := mustOpen(args[0], false)
		defer h.Close()
		if err := h.ExtractAll(args[1]); err != nil {
			log.Fatalf("%+v", err)
		}
	},
}

var flagCreate bool

var AddCmd = &cobra.Command{
	Use:   "add <archive> <virtual-path> <source-file>",
	Short: "Add a file into an archive and persist it",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		h := mustOpen(args[0], flagCreate && !utils.Exists(args[0]))
		defer h.Close()
		if err := h.AddFile(args[1], args[2]); err != nil {
			log.Fatalf("%+v", err)
		}
		if err := h.Write(); err != nil {
			log.Fatalf("%+v", err)
		}
	},
}

func init() {
	for _, c := range []*cobra.Command{LsCmd, CatCmd, ExtractCmd, ExtractAllCmd, AddCmd} {
		c.Flags().BoolVar(&flagVerify, "verify", false, "verify archive integrity while loading")
	}
	AddCmd.Flags().BoolVar(&flagCreate, "create", false, "create the archive if it does not exist")
	RootCmd.AddCommand(LsCmd, CatCmd, ExtractCmd, ExtractAllCmd, AddCmd)
}
