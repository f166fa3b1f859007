// SPDX-License-Identifier: MPL-2.0

package datapack

import "strings"

// Function is a named, ordered command sequence compiled to one flat
// script file, plus any synthesized helper files it required.
type Function struct {
	namespace string
	path      string
	commands  []Command
}

func newFunction(namespace, path string) *Function {
	return &Function{namespace: namespace, path: path}
}

// Namespace returns the name of the namespace owning the function.
func (f *Function) Namespace() string { return f.namespace }

// Path returns the function's path within its namespace, without an
// extension.
func (f *Function) Path() string { return f.path }

// Commands returns the function's command sequence.
func (f *Function) Commands() []Command { return f.commands }

// Add appends commands to the function body.
func (f *Function) Add(cmds ...Command) {
	f.commands = append(f.commands, cmds...)
}

// CallCommand returns the command invoking this function.
func (f *Function) CallCommand() Command {
	return Raw("function " + f.namespace + ":" + f.path)
}

// compile lowers the function body into its script text. Synthesized
// helpers end up on queue.
func (f *Function) compile(c *compiler, queue *functionQueue) string {
	st := newUnitState(f.namespace, f.path, queue)
	var lines []string
	for _, cmd := range f.commands {
		lines = append(lines, c.lowerCommand(cmd, st)...)
	}
	return strings.Join(lines, "\n")
}
