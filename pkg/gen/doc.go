// Package gen holds the format-specific producers built on top of the node
// model: the project-file generator (.gproj) and the config generator
// (.conf). Producers validate their own domain inputs, assemble a tree with
// pkg/node, and hand it to the serializer; they never write escaped text
// themselves. Each call builds a fresh tree, so concurrent generation needs
// no coordination.
package gen
