package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/syssam/enumgen/compiler/gen"
	"github.com/syssam/enumgen/compiler/load"
	"github.com/syssam/enumgen/diag"
)

var generateCmd = &cobra.Command{
	Use:   "generate <declarations.yaml>",
	Short: "Compile a declaration document into Go source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := args[0]
		outDir := stringSetting(cmd, "out")
		pkg := stringSetting(cmd, "pkg")
		if outDir == "" {
			outDir = "enums"
		}

		watch, _ := cmd.Flags().GetBool("watch")
		if !watch {
			return generateOnce(cmd.Context(), src, outDir, pkg)
		}
		return watchAndGenerate(cmd.Context(), src, outDir, pkg)
	},
}

func init() {
	generateCmd.Flags().StringP("out", "o", "", "output directory (default \"enums\")")
	generateCmd.Flags().String("pkg", "", "output package name (default: output directory base name)")
	generateCmd.Flags().BoolP("watch", "w", false, "regenerate when the document changes")
	rootCmd.AddCommand(generateCmd)
}

// stringSetting reads a flag, falling back to the viper config key of the
// same name when the flag was not set on the command line.
func stringSetting(cmd *cobra.Command, name string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	if v := viper.GetString(name); v != "" {
		return v
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

func generateOnce(ctx context.Context, src, outDir, pkg string) error {
	unit, err := load.ParseFile(src)
	if err != nil {
		return err
	}
	d := diag.New()
	graph := gen.NewGraph(unit, d)
	graph.Resolve(d)
	for _, r := range d.Records() {
		fmt.Fprintln(os.Stderr, r)
	}
	if d.HasErrors() {
		return fmt.Errorf("%s: %d error(s)", src, d.ErrorCount())
	}
	if err := gen.NewGenerator(graph, outDir).WithPackage(pkg).Generate(ctx); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "generated %d enumeration(s) in %s\n", len(graph.Bindings), outDir)
	return nil
}

// watchAndGenerate regenerates on every write to the source document until
// the context is canceled. Editor save sequences fire several events in
// quick succession, so writes are debounced.
func watchAndGenerate(ctx context.Context, src, outDir, pkg string) error {
	if err := generateOnce(ctx, src, outDir, pkg); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	// Watch the directory, not the file: editors that replace on save
	// break a direct file watch.
	if err := fw.Add(filepath.Dir(src)); err != nil {
		return err
	}

	const debounce = 100 * time.Millisecond
	var pending <-chan time.Time
	abs, _ := filepath.Abs(src)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			name, _ := filepath.Abs(event.Name)
			if name != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.After(debounce)
			}
		case <-pending:
			pending = nil
			if err := generateOnce(ctx, src, outDir, pkg); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		case _, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			// Watch errors are non-fatal; keep going.
		}
	}
}
