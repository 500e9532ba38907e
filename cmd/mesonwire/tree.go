// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"path"
	"path/filepath"

	"mesonwire/internal/discovery"
	"mesonwire/internal/issue"
	"mesonwire/internal/tree"

	"github.com/charmbracelet/log"
	"github.com/ddddddO/gtree"
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
)

var (
	treeDirectory string
	treeOutput    string
	treePrint     bool
)

// treeCmd generates the full meson.build tree for a definitions directory.
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Generate the meson build tree for all interfaces",
	Long: dedent.Dedent(`
		Generate the complete meson.build tree for every interface found
		under the definitions directory.

		The definitions directory is scanned recursively for definition
		files (*.interface.yaml, *.errors.yaml, *.events.yaml). Every
		directory level on the way to an interface receives a meson.build
		file linked into its parent, and every interface contributes
		generation targets for sources, markdown documentation, and (when
		an events file is present) the event registry.

		Regenerating over unchanged definitions reproduces the previous
		tree byte for byte.`),
	Args: cobra.NoArgs,
	RunE: runTree,
}

func init() {
	treeCmd.Flags().StringVarP(&treeDirectory, "directory", "d", "", "definitions directory (default is definitions_dir from config)")
	treeCmd.Flags().StringVarP(&treeOutput, "output", "o", "", "output directory (default is output_dir from config)")
	treeCmd.Flags().BoolVar(&treePrint, "print", false, "additionally print the generated directory tree")
}

func runTree(cmd *cobra.Command, args []string) error {
	conf := effectiveConfig()

	dir := treeDirectory
	if dir == "" {
		dir = conf.DefinitionsDir
	}
	out := treeOutput
	if out == "" {
		out = conf.OutputDir
	}

	idx, err := discovery.Scan(dir)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("scan definitions").
			WithResource(dir).
			WithSuggestion("Check that the definitions directory exists and is readable").
			WithSuggestion("Pass the definitions root with --directory").
			Wrap(err).
			BuildError()
	}
	log.Debug("scanned definitions", "dir", idx.Root(), "interfaces", idx.Len())

	builder := tree.NewBuilder(out)
	if err := builder.Build(cmd.Context(), idx); err != nil {
		return issue.NewErrorContext().
			WithOperation("generate build tree").
			WithResource(out).
			WithSuggestion("Check that the output directory is writable").
			Wrap(err).
			BuildError()
	}
	log.Debug("generated build tree", "out", out, "levels", len(builder.Visited()))

	if treePrint {
		return printBuildTree(cmd.OutOrStdout(), out, builder.Visited())
	}
	return nil
}

// printBuildTree renders the directory levels of a generated tree. Every
// listed directory holds exactly one build file, so the directory shape is
// the whole story.
func printBuildTree(w io.Writer, outDir string, visited []string) error {
	outRoot, err := filepath.Abs(outDir)
	if err != nil {
		return err
	}

	root := gtree.NewRoot(filepath.Base(outRoot))
	nodes := map[string]*gtree.Node{".": root}
	for _, dir := range visited {
		rel, err := filepath.Rel(outRoot, dir)
		if err != nil {
			return err
		}
		treeNode(root, nodes, filepath.ToSlash(rel))
	}

	return gtree.OutputProgrammably(w, root)
}

// treeNode returns the node for a slash-separated path relative to the tree
// root, creating it and any missing ancestors.
func treeNode(root *gtree.Node, nodes map[string]*gtree.Node, rel string) *gtree.Node {
	if n, ok := nodes[rel]; ok {
		return n
	}

	parent := root
	if dir := path.Dir(rel); dir != "." {
		parent = treeNode(root, nodes, dir)
	}

	n := parent.Add(path.Base(rel))
	nodes[rel] = n
	return n
}
