// Command ranklist is a small interactive shell around a ranked skip
// list of integers. It exists to poke at the library by hand:
//
//	insert 5 3 8     add keys
//	remove 3         delete one occurrence
//	contains 8       membership test
//	rank 8           1-based rank of the first occurrence
//	select 2         k-th smallest
//	profile          per-level occupancy table
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/metailurini/ranklist"
)

const help = `commands:
  insert K [K ...]  insert one or more integer keys
  remove K          remove one occurrence of K
  contains K        report whether K is present
  rank K            1-based rank of the first occurrence of K (-1 if absent)
  select I          key with 1-based rank I
  min | max         smallest / largest key
  len               number of stored keys
  list              all keys in rank order
  profile           per-level occupancy table
  clear             remove everything
  help              this text
  quit              exit`

func main() {
	list := ranklist.New[int](func(a, b int) bool { return a < b })

	fmt.Println("ranklist shell, type 'help' for commands")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			break
		}
		eval(list, fields[0], fields[1:])
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}
}

func eval(list *ranklist.List[int], cmd string, args []string) {
	switch cmd {
	case "insert":
		if len(args) == 0 {
			fmt.Println("insert needs at least one key")
			return
		}
		keys, err := parseKeys(args)
		if err != nil {
			fmt.Println(err)
			return
		}
		for _, k := range keys {
			list.Insert(k)
		}
		fmt.Printf("ok, len=%d\n", list.Len())
	case "remove":
		k, err := oneKey(args)
		if err != nil {
			fmt.Println(err)
			return
		}
		if list.Remove(k) {
			fmt.Printf("removed, len=%d\n", list.Len())
		} else {
			fmt.Println("not found")
		}
	case "contains":
		k, err := oneKey(args)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(list.Contains(k))
	case "rank":
		k, err := oneKey(args)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(list.Rank(k))
	case "select":
		i, err := oneKey(args)
		if err != nil {
			fmt.Println(err)
			return
		}
		if k, ok := list.Select(i); ok {
			fmt.Println(k)
		} else {
			fmt.Printf("rank %d out of range [1, %d]\n", i, list.Len())
		}
	case "min":
		if k, ok := list.Min(); ok {
			fmt.Println(k)
		} else {
			fmt.Println("empty")
		}
	case "max":
		if k, ok := list.Max(); ok {
			fmt.Println(k)
		} else {
			fmt.Println("empty")
		}
	case "len":
		fmt.Println(list.Len())
	case "list":
		it := list.Iterator()
		for it.Next() {
			fmt.Printf("%d:%d ", it.Rank(), it.Key())
		}
		fmt.Println()
	case "profile":
		printProfile(list.Stats())
	case "clear":
		list.Clear()
		fmt.Println("ok")
	case "help":
		fmt.Println(help)
	default:
		fmt.Printf("unknown command %q, try 'help'\n", cmd)
	}
}

func printProfile(s ranklist.Stats) {
	rows := make([][]string, 0, len(s.PerLevel))
	// Top level first, matching how the structure is usually drawn.
	for i := len(s.PerLevel) - 1; i >= 0; i-- {
		ls := s.PerLevel[i]
		rows = append(rows, []string{
			strconv.Itoa(ls.Level),
			strconv.Itoa(ls.Nodes),
			strconv.Itoa(ls.HeadSpan),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Level", "Nodes", "Head Span"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
	fmt.Printf("len=%d levels=%d maxHeight=%d\n", s.Length, s.Levels, s.MaxHeight)
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("bad key %q", a)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func oneKey(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one argument")
	}
	return strconv.Atoi(args[0])
}
