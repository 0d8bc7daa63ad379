package app

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/luoyh/lovestory/internal/anniversary"
	"github.com/luoyh/lovestory/internal/models"
	"github.com/luoyh/lovestory/internal/storage"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// Run starts the interactive loop on stdin.
func (a *App) Run(ctx context.Context) {
	printlnFn("Love story console (type 'help' for commands)")
	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}

// runREPL reads a line, parses the first token as the command and
// dispatches. Unknown commands are reported back. The loop exits on EOF or
// "exit"/"quit". Handlers print their own errors; the loop stays resilient.
func runREPL(ctx context.Context, a *App, scanner *bufio.Scanner) {
	for {
		fmt.Print("love> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn("Commands: story, addstory <date> <text>, editstory <i> <date> <text>,")
			printlnFn("  rmstory <i>, mvstory <from> <to>, memory, addmemory <date> <caption>,")
			printlnFn("  editmemory <i> <date> <caption>, rmmemory <i>, mvmemory <from> <to>,")
			printlnFn("  journey, setjourney <text>, ann, addann <name> <date> [icon],")
			printlnFn("  updateann <id> <date>, rmann <id>, primary, next, prev, confess,")
			printlnFn("  export, import <path>, info, resetconfession, resetall, exit")

		case "story":
			for i, e := range a.content.Story() {
				printlnFn(fmt.Sprintf("%2d. [%s] %s", i, e.Date, e.Content))
			}

		case "addstory":
			if len(args) < 2 {
				printlnFn("Usage: addstory <date> <text>")
				continue
			}
			e := a.content.AddStory(ctx, models.StoryFields{Date: args[0], Content: strings.Join(args[1:], " ")}, -1)
			printlnFn("Added", e.ID)

		case "editstory":
			if len(args) < 3 {
				printlnFn("Usage: editstory <i> <date> <text>")
				continue
			}
			i, err := strconv.Atoi(args[0])
			if err != nil {
				printlnFn("Not a number:", args[0])
				continue
			}
			reportErr(a.content.UpdateStory(ctx, i, models.StoryFields{Date: args[1], Content: strings.Join(args[2:], " ")}))

		case "rmstory":
			if i, ok := parseIndex(args); ok {
				reportErr(a.content.RemoveStory(ctx, i))
			}

		case "mvstory":
			if from, to, ok := parseMove(args); ok {
				reportErr(a.content.MoveStory(ctx, from, to))
			}

		case "memory":
			for i, e := range a.content.Memory() {
				printlnFn(fmt.Sprintf("%2d. [%s] %s", i, e.Date, e.Caption))
			}

		case "addmemory":
			if len(args) < 2 {
				printlnFn("Usage: addmemory <date> <caption>")
				continue
			}
			e := a.content.AddMemory(ctx, models.MemoryFields{Date: args[0], Caption: strings.Join(args[1:], " ")}, -1)
			printlnFn("Added", e.ID)

		case "editmemory":
			if len(args) < 3 {
				printlnFn("Usage: editmemory <i> <date> <caption>")
				continue
			}
			i, err := strconv.Atoi(args[0])
			if err != nil {
				printlnFn("Not a number:", args[0])
				continue
			}
			f := models.MemoryFields{Date: args[1], Caption: strings.Join(args[2:], " ")}
			// Icon and image are not editable from the console; keep them.
			if list := a.content.Memory(); i >= 0 && i < len(list) {
				f.Icon = list[i].Icon
				f.ImageURL = list[i].ImageURL
			}
			reportErr(a.content.UpdateMemory(ctx, i, f))

		case "rmmemory":
			if i, ok := parseIndex(args); ok {
				reportErr(a.content.RemoveMemory(ctx, i))
			}

		case "mvmemory":
			if from, to, ok := parseMove(args); ok {
				reportErr(a.content.MoveMemory(ctx, from, to))
			}

		case "journey":
			printlnFn(a.content.Journey())

		case "setjourney":
			a.content.UpdateJourney(ctx, strings.Join(args, " "))

		case "ann":
			for _, item := range a.registry.Items() {
				line := fmt.Sprintf("%s  %-12s p=%d", item.ID, item.Name, item.Priority)
				if days, ok := anniversary.DaysSince(item.Date); ok {
					line += fmt.Sprintf("  %s (%d 天)", strings.ReplaceAll(item.Date, "-", "."), days)
				} else {
					line += "  尚未设置日期"
				}
				printlnFn(line)
			}

		case "addann":
			if len(args) < 2 {
				printlnFn("Usage: addann <name> <date> [icon]")
				continue
			}
			f := models.AnniversaryFields{Name: args[0], Date: args[1]}
			if len(args) > 2 {
				f.Icon = args[2]
			}
			item := a.registry.Add(ctx, f)
			printlnFn("Added", item.ID)

		case "updateann":
			if len(args) != 2 {
				printlnFn("Usage: updateann <id> <date>")
				continue
			}
			reportErr(a.registry.Update(ctx, args[0], models.AnniversaryPatch{Date: &args[1]}))

		case "rmann":
			if len(args) == 0 {
				printlnFn("Usage: rmann <id>")
				continue
			}
			reportErr(a.registry.Remove(ctx, args[0]))

		case "primary":
			if item, ok := a.registry.Primary(ctx); ok {
				days, _ := anniversary.DaysSince(item.Date)
				printlnFn(fmt.Sprintf("%s: %d 天", item.Name, days))
			} else {
				printlnFn("No primary anniversary yet")
			}

		case "next":
			a.registry.Next()
			showCurrent(a)

		case "prev":
			a.registry.Prev()
			showCurrent(a)

		case "confess":
			a.AcceptConfession(ctx)
			printlnFn("在此献上，我不变的爱与忠诚")

		case "export":
			path, err := a.ExportToFile(ctx)
			if err != nil {
				printlnFn("Export failed:", err)
			} else {
				printlnFn("Exported to", path)
			}

		case "import":
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			if err := a.ImportFromFile(ctx, path, storage.ImportOptions{}); err != nil {
				printlnFn("Import failed:", err)
			} else {
				printlnFn("Import succeeded")
			}

		case "info":
			info := a.gateway.Info(ctx)
			printlnFn(fmt.Sprintf("available=%v items=%d bytes=%d", info.Available, info.ItemCount, info.TotalBytes))

		case "resetconfession":
			a.ResetConfession(ctx)
			printlnFn("Confession status reset")

		case "resetall":
			a.ResetAll(ctx)
			printlnFn("All data reset to defaults")

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func showCurrent(a *App) {
	if item, ok := a.registry.Current(); ok {
		printlnFn(item.Name)
	}
}

func reportErr(err error) {
	if err != nil {
		printlnFn("Error:", err)
	} else {
		printlnFn("OK")
	}
}

func parseIndex(args []string) (int, bool) {
	if len(args) != 1 {
		printlnFn("Usage: <command> <index>")
		return 0, false
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Not a number:", args[0])
		return 0, false
	}
	return i, true
}

func parseMove(args []string) (int, int, bool) {
	if len(args) != 2 {
		printlnFn("Usage: <command> <from> <to>")
		return 0, 0, false
	}
	from, err1 := strconv.Atoi(args[0])
	to, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		printlnFn("Indexes must be numbers")
		return 0, 0, false
	}
	return from, to, true
}
