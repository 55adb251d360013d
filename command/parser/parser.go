/*
 * udp4 - Command parser.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package parser implements the interactive console's command language:
// a small set of commands driving a Session's UDP instances by hand. The
// line tokenizer and minimum-prefix command matching are adapted from
// S370's command/parser, generalized from CPU/device commands to UDP
// instance commands.
package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/rcornwell/udp4/config/udpconfig"
	"github.com/rcornwell/udp4/delay"
	"github.com/rcornwell/udp4/udp"
	"github.com/rcornwell/udp4/util/logger"
	"github.com/rcornwell/udp4/util/trace"
)

// Session holds the state one REPL drives: the registry of compiled UDP
// definitions, the live instances built from them, and a delay queue a
// "step" command can advance. There is exactly one Session per REPL, so,
// like the core's trace package, ProcessCommand and CompleteCmd reach it
// through a package-level pointer rather than threading it through every
// call.
type Session struct {
	Registry  *udp.Registry
	Instances map[string]*udp.InstanceCore
	Histories map[string]*udp.History
	Delay     *delay.Queue

	// Log, when non-nil, is toggled into live stderr-echo mode alongside
	// trace.SetEnabled whenever "trace" is used, so enabling row-match
	// tracing interactively also shows those lines immediately instead of
	// only in the log file. Nil in contexts with no log file open (e.g.
	// tests), where "trace" just sets the mask.
	Log *logger.LogHandler
}

// NewSession returns an empty Session ready for "load" or "create" commands.
func NewSession() *Session {
	return &Session{
		Registry:  udp.NewRegistry(),
		Instances: make(map[string]*udp.InstanceCore),
		Histories: make(map[string]*udp.History),
		Delay:     &delay.Queue{},
	}
}

var active *Session

// Bind installs sess as the Session that ProcessCommand and CompleteCmd
// operate on.
func Bind(sess *Session) {
	active = sess
}

type cmd struct {
	name     string
	min      int
	process  func(*cmdLine) (bool, error)
	complete func(*cmdLine) []string
}

type cmdLine struct {
	line string
	pos  int
}

var cmdList = []cmd{
	{name: "load", min: 1, process: cmdLoad},
	{name: "list", min: 1, process: cmdList_},
	{name: "create", min: 1, process: cmdCreate, complete: completeLabels},
	{name: "set", min: 1, process: cmdSet, complete: completeInstances},
	{name: "show", min: 2, process: cmdShow, complete: completeInstances},
	{name: "history", min: 1, process: cmdHistory, complete: completeInstances},
	{name: "step", min: 2, process: cmdStep},
	{name: "trace", min: 1, process: cmdTrace},
	{name: "quit", min: 1, process: cmdQuit},
}

// ProcessCommand executes one command line against the bound Session. The
// returned bool is true when the REPL should exit.
func ProcessCommand(commandLine string) (bool, error) {
	line := &cmdLine{line: commandLine}
	name := line.getWord()

	match := matchList(name)
	if len(match) == 0 {
		return false, errors.New("command not found: " + name)
	}
	if len(match) > 1 {
		return false, errors.New("ambiguous command: " + name)
	}
	return match[0].process(line)
}

// CompleteCmd completes a partial command line, for the console's tab
// completion.
func CompleteCmd(commandLine string) []string {
	line := &cmdLine{line: commandLine}
	name := line.getWord()

	if !line.isEOL() && unicode.IsSpace(rune(line.line[line.pos])) {
		match := matchList(name)
		if len(match) != 1 || match[0].complete == nil {
			return nil
		}
		return match[0].complete(line)
	}

	var matches []string
	for _, m := range cmdList {
		if strings.HasPrefix(m.name, name) {
			matches = append(matches, m.name)
		}
	}
	sort.Strings(matches)
	return matches
}

func matchCommand(m cmd, name string) bool {
	if len(name) > len(m.name) || len(name) < m.min {
		return false
	}
	return strings.HasPrefix(m.name, name)
}

func matchList(name string) []cmd {
	if name == "" {
		return nil
	}
	var matches []cmd
	for _, m := range cmdList {
		if matchCommand(m, name) {
			matches = append(matches, m)
		}
	}
	return matches
}

func (line *cmdLine) skipSpace() {
	for line.pos < len(line.line) && unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
}

func (line *cmdLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}
	return line.line[line.pos] == '#'
}

func (line *cmdLine) getWord() string {
	line.skipSpace()
	if line.isEOL() {
		return ""
	}
	start := line.pos
	for line.pos < len(line.line) && !unicode.IsSpace(rune(line.line[line.pos])) && line.line[line.pos] != '#' {
		line.pos++
	}
	return line.line[start:line.pos]
}

func completeLabels(_ *cmdLine) []string {
	if active == nil {
		return nil
	}
	labels := active.Registry.Labels()
	sort.Strings(labels)
	return labels
}

func completeInstances(_ *cmdLine) []string {
	if active == nil {
		return nil
	}
	names := make([]string, 0, len(active.Instances))
	for name := range active.Instances {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func requireSession() (*Session, error) {
	if active == nil {
		return nil, errors.New("no session bound")
	}
	return active, nil
}

// cmdLoad loads a .udp library file into the active session: every
// definition it contains is registered, and every "instance" directive in
// it builds an InstanceCore.
func cmdLoad(line *cmdLine) (bool, error) {
	sess, err := requireSession()
	if err != nil {
		return false, err
	}
	path := line.getWord()
	if path == "" {
		return false, errors.New("load requires a file path")
	}

	lib, err := udpconfig.Load(path)
	if err != nil {
		return false, err
	}
	for _, label := range lib.Registry.Labels() {
		def, _ := lib.Registry.Lookup(label)
		if err := sess.Registry.Register(def); err != nil {
			return false, err
		}
	}
	for _, spec := range lib.Instances {
		def, err := sess.Registry.Lookup(spec.Label)
		if err != nil {
			return false, err
		}
		sess.Instances[spec.Name] = udp.NewInstance(def)
	}
	slog.Info("loaded UDP library", "path", path, "definitions", len(lib.Registry.Labels()), "instances", len(lib.Instances))
	return false, nil
}

// cmdList_ (named to avoid clashing with the cmdList table) prints every
// registered definition and live instance.
func cmdList_(_ *cmdLine) (bool, error) {
	sess, err := requireSession()
	if err != nil {
		return false, err
	}
	labels := sess.Registry.Labels()
	sort.Strings(labels)
	fmt.Println("definitions:")
	for _, label := range labels {
		def, _ := sess.Registry.Lookup(label)
		fmt.Printf("  %-12s %-14s ports=%d\n", label, def.Kind, def.Ports)
	}
	names := make([]string, 0, len(sess.Instances))
	for name := range sess.Instances {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("instances:")
	for _, name := range names {
		inst := sess.Instances[name]
		fmt.Printf("  %-12s %-12s output=%s\n", name, inst.Def.Label, inst.Output())
	}
	return false, nil
}

// cmdCreate builds a new instance from a registered definition: "create
// <name> <label> [history]". The optional "history" argument attaches a
// fixed-capacity history recorder, inspectable later with "history".
func cmdCreate(line *cmdLine) (bool, error) {
	sess, err := requireSession()
	if err != nil {
		return false, err
	}
	name := line.getWord()
	label := line.getWord()
	withHistory := strings.EqualFold(line.getWord(), "history")
	if name == "" || label == "" {
		return false, errors.New("create requires an instance name and a udp label")
	}
	if _, exists := sess.Instances[name]; exists {
		return false, fmt.Errorf("instance %q already exists", name)
	}
	def, err := sess.Registry.Lookup(label)
	if err != nil {
		return false, err
	}
	inst := udp.NewInstance(def)
	if withHistory {
		h := udp.NewHistory()
		inst.EnableHistory(h)
		sess.Histories[name] = h
	}
	sess.Instances[name] = inst
	return false, nil
}

// cmdSet applies a single port update: "set <instance> <port> <value>".
func cmdSet(line *cmdLine) (bool, error) {
	sess, err := requireSession()
	if err != nil {
		return false, err
	}
	name := line.getWord()
	portWord := line.getWord()
	valueWord := line.getWord()
	if name == "" || portWord == "" || valueWord == "" {
		return false, errors.New("set requires an instance, a port number, and a value")
	}

	inst, ok := sess.Instances[name]
	if !ok {
		return false, fmt.Errorf("unknown instance: %s", name)
	}
	port, err := strconv.Atoi(portWord)
	if err != nil {
		return false, fmt.Errorf("invalid port number: %s", portWord)
	}
	value, err := parseLogicValue(valueWord)
	if err != nil {
		return false, err
	}

	out := inst.OnPortUpdate(port, value)
	fmt.Printf("%s: port %d <- %s, output = %s\n", name, port, value, out)
	return false, nil
}

// cmdShow prints an instance's current port state and last output.
func cmdShow(line *cmdLine) (bool, error) {
	sess, err := requireSession()
	if err != nil {
		return false, err
	}
	name := line.getWord()
	inst, ok := sess.Instances[name]
	if !ok {
		return false, fmt.Errorf("unknown instance: %s", name)
	}
	cur := inst.Current()
	var ports []string
	for i := 0; i < inst.Def.Ports; i++ {
		ports = append(ports, udp.ValueAt(cur, i).String())
	}
	fmt.Printf("%s (%s): ports=[%s] output=%s\n", name, inst.Def.Label, strings.Join(ports, " "), inst.Output())
	return false, nil
}

// cmdHistory prints the port-update history recorded for an instance, if
// history recording was enabled for it.
func cmdHistory(line *cmdLine) (bool, error) {
	sess, err := requireSession()
	if err != nil {
		return false, err
	}
	name := line.getWord()
	if _, ok := sess.Instances[name]; !ok {
		return false, fmt.Errorf("unknown instance: %s", name)
	}
	h, ok := sess.Histories[name]
	if !ok {
		return false, fmt.Errorf("history not enabled for %q; recreate it with: create <name> <label> history", name)
	}
	for _, e := range h.Snapshot() {
		fmt.Printf("  port %d <- %s, output -> %s\n", e.Port, e.Value, e.Output)
	}
	return false, nil
}

// cmdStep advances the session's reference delay queue by the given
// number of ticks, firing any callbacks whose delay has elapsed.
func cmdStep(line *cmdLine) (bool, error) {
	sess, err := requireSession()
	if err != nil {
		return false, err
	}
	ticksWord := line.getWord()
	ticks, err := strconv.Atoi(ticksWord)
	if err != nil {
		return false, fmt.Errorf("invalid tick count: %s", ticksWord)
	}
	sess.Delay.Advance(ticks)
	return false, nil
}

// cmdTrace sets the row-match tracing mask and, if a log file is open,
// switches it to live stderr echo for as long as any category is enabled.
func cmdTrace(line *cmdLine) (bool, error) {
	sess, err := requireSession()
	if err != nil {
		return false, err
	}
	maskWord := line.getWord()
	mask, err := strconv.ParseInt(maskWord, 0, 64)
	if err != nil {
		return false, fmt.Errorf("invalid trace mask: %s", maskWord)
	}
	trace.SetEnabled(trace.Mask(mask))
	if sess.Log != nil {
		live := mask != 0
		sess.Log.SetDebug(&live)
	}
	return false, nil
}

// cmdQuit ends the REPL.
func cmdQuit(_ *cmdLine) (bool, error) {
	return true, nil
}

func parseLogicValue(s string) (udp.LogicValue, error) {
	switch strings.ToLower(s) {
	case "0":
		return udp.V0, nil
	case "1":
		return udp.V1, nil
	case "x":
		return udp.Vx, nil
	case "z":
		return udp.Vz, nil
	default:
		return udp.Vx, fmt.Errorf("invalid logic value: %s", s)
	}
}
