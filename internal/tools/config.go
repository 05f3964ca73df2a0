package tools

import (
	"context"
	"fmt"

	"github.com/goliatone/go-enfgen/internal/ctxlog"
	"github.com/goliatone/go-enfgen/pkg/gen"
	"github.com/goliatone/go-enfgen/pkg/node"
	"github.com/mark3labs/mcp-go/mcp"
)

// ConfigTool generates .conf class definition documents, including
// arbitrarily nested component blocks.
type ConfigTool struct{}

// NewConfigTool returns the tool backing generate_config.
func NewConfigTool() *ConfigTool {
	return &ConfigTool{}
}

// configBlock mirrors the node model on the wire. Properties stay an
// ordered list so documents render keys in the order the client sent.
type configBlock struct {
	ClassName    string        `json:"class_name"`
	InstanceName string        `json:"instance_name,omitempty"`
	Properties   []propertyArg `json:"properties,omitempty"`
	Children     []configBlock `json:"children,omitempty"`
	Values       []string      `json:"values,omitempty"`
}

type propertyArg struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Definition describes the tool schema advertised to MCP clients.
func (t *ConfigTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_config",
		mcp.WithDescription("Generate an Enfusion .conf class definition. "+
			"Properties and child blocks are emitted in the order provided."),
		mcp.WithString("class_name",
			mcp.Required(),
			mcp.Description("Root class name, for example SCR_AIConfig."),
		),
		mcp.WithString("instance_name",
			mcp.Description("Optional instance name placed after the class on the header line."),
		),
		mcp.WithArray("properties",
			mcp.Description("Ordered key/value pairs, each {key, value}. Values are emitted quoted."),
			mcp.Items(map[string]any{"type": "object"}),
		),
		mcp.WithArray("children",
			mcp.Description("Nested blocks, each {class_name, instance_name, properties, children, values}."),
			mcp.Items(map[string]any{"type": "object"}),
		),
		mcp.WithArray("values",
			mcp.Description("Bare quoted values listed in the root block body."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

// Handle renders the config document and returns it as text.
func (t *ConfigTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var root configBlock
	if err := req.BindArguments(&root); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	children := make([]*node.Node, 0, len(root.Children))
	for _, child := range root.Children {
		children = append(children, blockToNode(child))
	}

	cfg := gen.Config{
		ClassName:    root.ClassName,
		InstanceName: root.InstanceName,
		Properties:   blockProperties(root.Properties),
		Children:     children,
	}

	tree, err := gen.BuildConfigTree(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generate config: %v", err)), nil
	}
	for _, v := range root.Values {
		tree.AppendValue(v)
	}

	out, err := node.Serialize(tree)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generate config: %v", err)), nil
	}

	ctxlog.FromContext(ctx).Debug("generated config document", "class", root.ClassName, "bytes", len(out))
	return mcp.NewToolResultText(out), nil
}

func blockToNode(b configBlock) *node.Node {
	n := node.New(b.ClassName, node.WithID(b.InstanceName))
	n.Properties = blockProperties(b.Properties)
	for _, child := range b.Children {
		n.AppendChild(blockToNode(child))
	}
	for _, v := range b.Values {
		n.AppendValue(v)
	}
	return n
}

func blockProperties(props []propertyArg) []node.Property {
	if len(props) == 0 {
		return nil
	}
	out := make([]node.Property, 0, len(props))
	for _, p := range props {
		out = append(out, node.Property{Key: p.Key, Value: p.Value})
	}
	return out
}
