package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-enfgen/pkg/gen"
	"github.com/goliatone/go-enfgen/pkg/node"
)

var (
	configInstance   string
	configProperties []string
	configValues     []string
	configOutput     string
)

func init() {
	cmd := newConfigCmd()
	cmd.Flags().StringVar(&configInstance, "instance", "", "Instance name placed after the class on the header line")
	cmd.Flags().StringArrayVar(&configProperties, "property", nil, "Property as key=value, repeatable, emitted in order")
	cmd.Flags().StringArrayVar(&configValues, "value", nil, "Bare quoted value, repeatable, emitted after properties")
	cmd.Flags().StringVarP(&configOutput, "output", "o", "", "Output file (stdout if empty)")
	rootCmd.AddCommand(cmd)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config <class>",
		Short: "Generate a .conf class definition",
		Long: `The config command generates a class definition document. Nested
component blocks are available through the library and the MCP tool;
the command line covers the flat property and value cases.

Example:
  enfgen config SCR_WeaponStatsConfig
  enfgen config SCR_AIConfig --instance Default --property AggressionLevel=0.75
  enfgen config MyList --value alpha --value bravo -o my_list.conf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(args)
		},
	}
}

func runConfig(args []string) error {
	props := make([]node.Property, 0, len(configProperties))
	for _, raw := range configProperties {
		key, value, ok := strings.Cut(raw, "=")
		if !ok {
			return fmt.Errorf("property %q: expected key=value", raw)
		}
		props = append(props, node.Property{Key: key, Value: value})
	}

	tree, err := gen.BuildConfigTree(gen.Config{
		ClassName:    args[0],
		InstanceName: configInstance,
		Properties:   props,
	})
	if err != nil {
		return fmt.Errorf("generate config: %w", err)
	}
	for _, v := range configValues {
		tree.AppendValue(v)
	}

	doc, err := node.Serialize(tree)
	if err != nil {
		return fmt.Errorf("generate config: %w", err)
	}
	return writeDocument(configOutput, doc)
}
