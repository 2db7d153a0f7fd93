package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvds/binheap"
	"github.com/katalvlaran/lvds/bridge"
	"github.com/katalvlaran/lvds/hashtable"
)

var (
	errSyntax      = errors.New("syntax error")
	errUnknownName = errors.New("unknown instance")
	errNameTaken   = errors.New("name already in use")
	errUnknownOp   = errors.New("unknown operation")
)

var hashers = map[string]hashtable.Hasher{
	"charsum": hashtable.CharSum,
	"djb2":    hashtable.DJB2,
	"xxhash":  hashtable.XXHash,
}

// interpreter binds script names to registry handles.
type interpreter struct {
	reg   *bridge.Registry
	names map[string]bridge.Handle
	out   io.Writer
	log   *slog.Logger
}

func newInterpreter(reg *bridge.Registry, out io.Writer, log *slog.Logger) *interpreter {
	return &interpreter{reg: reg, names: make(map[string]bridge.Handle), out: out, log: log}
}

// run executes every line of in. It returns the number of failed commands;
// err is set only when strict mode stopped the script or reading failed.
func (ip *interpreter) run(in io.Reader, strict bool) (failed int, err error) {
	sc := bufio.NewScanner(in)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ip.log.Debug("exec", "line", lineNo, "cmd", line)
		if err := ip.exec(strings.Fields(line)); err != nil {
			failed++
			ip.log.Error("command failed", "line", lineNo, "cmd", line, "err", err)
			if strict {
				return failed, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return failed, fmt.Errorf("read script: %w", err)
	}

	return failed, nil
}

func (ip *interpreter) exec(args []string) error {
	switch args[0] {
	case "new":
		return ip.create(args[1:])
	case "free":
		if len(args) != 2 {
			return fmt.Errorf("%w: free NAME", errSyntax)
		}
		h, ok := ip.names[args[1]]
		if !ok {
			return fmt.Errorf("%w: %s", errUnknownName, args[1])
		}
		delete(ip.names, args[1])

		return ip.reg.Destroy(h)
	case "names":
		for _, name := range slices.Sorted(maps.Keys(ip.names)) {
			kind, _ := ip.reg.Kind(ip.names[name])
			ip.printf("%s %s\n", name, kind)
		}

		return nil
	}

	h, ok := ip.names[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownName, args[0])
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: %s needs an operation", errSyntax, args[0])
	}
	kind, err := ip.reg.Kind(h)
	if err != nil {
		return err
	}
	op, rest := args[1], args[2:]
	switch kind {
	case bridge.KindAVL:
		return ip.avl(h, op, rest)
	case bridge.KindGraph:
		return ip.graph(h, op, rest)
	case bridge.KindHeap:
		return ip.heap(h, op, rest)
	case bridge.KindHashTable:
		return ip.hash(h, op, rest)
	case bridge.KindList:
		return ip.list(h, op, rest)
	}

	return fmt.Errorf("%w: %s", errUnknownOp, op)
}

func (ip *interpreter) create(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: new KIND NAME [ARGS]", errSyntax)
	}
	kind, name, rest := args[0], args[1], args[2:]
	if _, taken := ip.names[name]; taken {
		return fmt.Errorf("%w: %s", errNameTaken, name)
	}

	var h bridge.Handle
	switch kind {
	case "avl":
		h = ip.reg.NewAVL()
	case "list":
		h = ip.reg.NewList()
	case "graph":
		if len(rest) > 0 {
			if _, err := strconv.Atoi(rest[0]); err != nil {
				g, err := generate(rest[0], rest[1:])
				if err != nil {
					return err
				}
				h = ip.reg.AdoptGraph(g)
				break
			}
		}
		n := 0
		if len(rest) > 0 {
			n, _ = strconv.Atoi(rest[0])
		}
		h = ip.reg.NewGraph(n)
	case "heap":
		mode := binheap.Min
		if len(rest) > 0 {
			switch rest[0] {
			case "min":
			case "max":
				mode = binheap.Max
			default:
				return fmt.Errorf("%w: heap mode %q", errSyntax, rest[0])
			}
		}
		h = ip.reg.NewHeap(mode)
	case "hash":
		if len(rest) < 1 {
			return fmt.Errorf("%w: new hash NAME SIZE [HASHER]", errSyntax)
		}
		size, err := atoi(rest[0])
		if err != nil {
			return err
		}
		var opts []hashtable.Option
		if len(rest) > 1 {
			fn, ok := hashers[rest[1]]
			if !ok {
				return fmt.Errorf("%w: hasher %q", errSyntax, rest[1])
			}
			opts = append(opts, hashtable.WithHasher(fn))
		}
		if h, err = ip.reg.NewHashTable(size, opts...); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: kind %q", errSyntax, kind)
	}
	ip.names[name] = h
	ip.log.Debug("created", "name", name, "kind", kind, "handle", uint64(h))

	return nil
}

func (ip *interpreter) avl(h bridge.Handle, op string, args []string) error {
	switch op {
	case "insert", "delete", "search":
		k, err := oneInt(op, args)
		if err != nil {
			return err
		}
		var ok bool
		switch op {
		case "insert":
			ok, err = ip.reg.AVLInsert(h, k)
		case "delete":
			ok, err = ip.reg.AVLDelete(h, k)
		default:
			ok, err = ip.reg.AVLSearch(h, k)
		}
		if err != nil {
			return err
		}
		ip.printf("%t\n", ok)
	case "height":
		n, err := ip.reg.AVLHeight(h)
		if err != nil {
			return err
		}
		ip.printf("%d\n", n)
	case "inorder":
		keys, err := ip.reg.AVLInOrder(h)
		if err != nil {
			return err
		}
		ip.printf("%v\n", keys)
	default:
		return fmt.Errorf("%w: avl %s", errUnknownOp, op)
	}

	return nil
}

func (ip *interpreter) graph(h bridge.Handle, op string, args []string) error {
	switch op {
	case "addvertex":
		id, err := ip.reg.GraphAddVertex(h)
		if err != nil {
			return err
		}
		ip.printf("%d\n", id)
	case "rmvertex":
		id, err := oneInt(op, args)
		if err != nil {
			return err
		}
		return ip.ok(ip.reg.GraphRemoveVertex(h, id))
	case "edge", "uedge":
		if len(args) != 3 {
			return fmt.Errorf("%w: %s U V W", errSyntax, op)
		}
		u, err := atoi(args[0])
		if err != nil {
			return err
		}
		v, err := atoi(args[1])
		if err != nil {
			return err
		}
		w, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("%w: weight %q", errSyntax, args[2])
		}
		if op == "edge" {
			return ip.ok(ip.reg.GraphAddEdge(h, u, v, w))
		}
		return ip.ok(ip.reg.GraphAddUndirectedEdge(h, u, v, w))
	case "rmedge":
		if len(args) != 2 {
			return fmt.Errorf("%w: rmedge U V", errSyntax)
		}
		u, err := atoi(args[0])
		if err != nil {
			return err
		}
		v, err := atoi(args[1])
		if err != nil {
			return err
		}
		return ip.ok(ip.reg.GraphRemoveEdge(h, u, v))
	case "count":
		n, err := ip.reg.GraphVertexCount(h)
		if err != nil {
			return err
		}
		ip.printf("%d\n", n)
	case "edges":
		edges, err := ip.reg.GraphEdges(h)
		if err != nil {
			return err
		}
		for _, e := range edges {
			ip.printf("%d->%d %g\n", e.From, e.To, e.Weight)
		}
	case "bfs", "dfs":
		start, err := oneInt(op, args)
		if err != nil {
			return err
		}
		var order []int
		if op == "bfs" {
			order, err = ip.reg.GraphBFS(h, start)
		} else {
			order, err = ip.reg.GraphDFS(h, start)
		}
		if err != nil {
			return err
		}
		ip.printf("%v\n", order)
	case "dijkstra":
		start, err := oneInt(op, args)
		if err != nil {
			return err
		}
		res, err := ip.reg.GraphDijkstra(h, start)
		if err != nil {
			return err
		}
		parts := make([]string, 0, len(res.Dist))
		for _, v := range slices.Sorted(maps.Keys(res.Dist)) {
			parts = append(parts, fmt.Sprintf("%d:%g", v, res.Dist[v]))
		}
		ip.printf("%s\n", strings.Join(parts, " "))
	case "prim":
		mst, err := ip.reg.GraphPrim(h)
		if err != nil {
			return err
		}
		parts := make([]string, 0, len(mst.Edges))
		for _, e := range mst.Edges {
			parts = append(parts, fmt.Sprintf("%d-%d", e.From, e.To))
		}
		ip.printf("total=%g spanning=%t edges=[%s]\n", mst.Total, mst.Spanning, strings.Join(parts, " "))
	default:
		return fmt.Errorf("%w: graph %s", errUnknownOp, op)
	}

	return nil
}

func (ip *interpreter) heap(h bridge.Handle, op string, args []string) error {
	switch op {
	case "insert":
		v, err := oneInt(op, args)
		if err != nil {
			return err
		}
		return ip.ok(ip.reg.HeapInsert(h, v))
	case "peek":
		v, ok, err := ip.reg.HeapPeek(h)
		if err != nil {
			return err
		}
		if !ok {
			ip.printf("empty\n")
			return nil
		}
		ip.printf("%d\n", v)
	case "extract":
		v, err := ip.reg.HeapExtractRoot(h)
		if err != nil {
			return err
		}
		ip.printf("%d\n", v)
	case "values":
		vals, err := ip.reg.HeapValues(h)
		if err != nil {
			return err
		}
		ip.printf("%v\n", vals)
	default:
		return fmt.Errorf("%w: heap %s", errUnknownOp, op)
	}

	return nil
}

func (ip *interpreter) hash(h bridge.Handle, op string, args []string) error {
	switch op {
	case "insert":
		if len(args) != 2 {
			return fmt.Errorf("%w: insert KEY VALUE", errSyntax)
		}
		v, err := atoi(args[1])
		if err != nil {
			return err
		}
		p, err := ip.reg.HashInsert(h, args[0], v)
		if err != nil {
			return err
		}
		ip.printf("slot=%d probes=%d\n", p.Slot, p.Count)
	case "search":
		if len(args) != 1 {
			return fmt.Errorf("%w: search KEY", errSyntax)
		}
		v, p, found, err := ip.reg.HashSearch(h, args[0])
		if err != nil {
			return err
		}
		if !found {
			ip.printf("miss probes=%d\n", p.Count)
			return nil
		}
		ip.printf("%d slot=%d probes=%d\n", v, p.Slot, p.Count)
	case "remove":
		if len(args) != 1 {
			return fmt.Errorf("%w: remove KEY", errSyntax)
		}
		p, removed, err := ip.reg.HashRemove(h, args[0])
		if err != nil {
			return err
		}
		if !removed {
			ip.printf("miss probes=%d\n", p.Count)
			return nil
		}
		ip.printf("slot=%d\n", p.Slot)
	case "slots":
		slots, err := ip.reg.HashSlots(h)
		if err != nil {
			return err
		}
		for i, s := range slots {
			switch s.State {
			case hashtable.Occupied:
				ip.printf("%d %s=%d probes=%d\n", i, s.Key, s.Value, s.Probes)
			case hashtable.Deleted:
				ip.printf("%d deleted %s\n", i, s.Key)
			}
		}
	default:
		return fmt.Errorf("%w: hash %s", errUnknownOp, op)
	}

	return nil
}

func (ip *interpreter) list(h bridge.Handle, op string, args []string) error {
	switch op {
	case "pushfront", "pushback":
		v, err := oneInt(op, args)
		if err != nil {
			return err
		}
		if op == "pushfront" {
			return ip.ok(ip.reg.ListPushFront(h, v))
		}
		return ip.ok(ip.reg.ListPushBack(h, v))
	case "popfront", "popback":
		var (
			v   int
			err error
		)
		if op == "popfront" {
			v, err = ip.reg.ListPopFront(h)
		} else {
			v, err = ip.reg.ListPopBack(h)
		}
		if err != nil {
			return err
		}
		ip.printf("%d\n", v)
	case "front", "back":
		var (
			v   int
			ok  bool
			err error
		)
		if op == "front" {
			v, ok, err = ip.reg.ListFront(h)
		} else {
			v, ok, err = ip.reg.ListBack(h)
		}
		if err != nil {
			return err
		}
		if !ok {
			ip.printf("empty\n")
			return nil
		}
		ip.printf("%d\n", v)
	case "values":
		vals, err := ip.reg.ListValues(h)
		if err != nil {
			return err
		}
		ip.printf("%v\n", vals)
	default:
		return fmt.Errorf("%w: list %s", errUnknownOp, op)
	}

	return nil
}

func (ip *interpreter) ok(err error) error {
	if err == nil {
		ip.printf("ok\n")
	}

	return err
}

func (ip *interpreter) printf(format string, args ...any) {
	fmt.Fprintf(ip.out, format, args...)
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: integer %q", errSyntax, s)
	}

	return n, nil
}

func oneInt(op string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s takes one integer", errSyntax, op)
	}

	return atoi(args[0])
}
