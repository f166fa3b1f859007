// SPDX-License-Identifier: MPL-2.0

package datapack

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"
	"sync"

	"packsmith/pkg/packformat"
)

// CompileOptions configure a compile run.
type CompileOptions struct {
	// Debug includes Debug-wrapped commands in the output; release
	// compiles strip them.
	Debug bool
}

// compiler carries the per-run configuration through lowering.
type compiler struct {
	opts     CompileOptions
	strategy packformat.Strategy
}

// functionQueue collects functions synthesized during lowering. Lowering a
// queued function may synthesize further ones, so callers drain it until
// empty.
type functionQueue struct {
	mu    sync.Mutex
	items []*Function
}

func (q *functionQueue) push(fn *Function) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, fn)
}

func (q *functionQueue) pop() (*Function, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil, false
	}
	fn := q.items[0]
	q.items = q.items[1:]
	return fn, true
}

func (q *functionQueue) empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) == 0
}

// unitState is the per-function lowering state: the owning unit's identity
// plus the uid counter naming its synthesized helpers. Scoping the counter
// to the unit keeps generated names independent of the order units are
// compiled in.
type unitState struct {
	namespace string
	path      string
	uid       int
	queue     *functionQueue
}

func newUnitState(namespace, path string, queue *functionQueue) *unitState {
	return &unitState{namespace: namespace, path: path, queue: queue}
}

func (st *unitState) nextUID() int {
	uid := st.uid
	st.uid++
	return uid
}

// nextHash derives the next deterministic identifier for this unit, the
// md5 digest of "<base>:<uid>".
func (st *unitState) nextHash(base string) string {
	sum := md5.Sum([]byte(base + ":" + strconv.Itoa(st.nextUID())))
	return hex.EncodeToString(sum[:])
}

// scratch returns a throwaway copy for dry-run measurement: same identity
// and uid position, private queue so side effects are discarded.
func (st *unitState) scratch() *unitState {
	return &unitState{namespace: st.namespace, path: st.path, uid: st.uid, queue: &functionQueue{}}
}

// synthesizedPrefix is the subfolder reserved for compiler-generated
// functions. User function paths must not start with it.
const synthesizedPrefix = "ps/"

// synthesize moves cmds into a new queued function and returns the line
// invoking it. Helpers synthesized for an already synthesized unit fold
// into the origin unit's subfolder instead of nesting a second prefix.
func (c *compiler) synthesize(cmds []Command, st *unitState) string {
	origin := strings.TrimPrefix(st.path, synthesizedPrefix)
	path := synthesizedPrefix + origin + "/" + st.nextHash(origin)[:16]

	fn := newFunction(st.namespace, path)
	fn.Add(cmds...)
	st.queue.push(fn)

	return "function " + st.namespace + ":" + path
}
