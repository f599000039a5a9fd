// cmd/tools/registry-updater/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"business-recommender/pkg/registry"
)

const defaultPath = "configs/activity-registry.json"

type command struct {
	flags *flag.FlagSet
	usage string
	run   func(path string) error
}

func main() {
	if len(os.Args) < 2 {
		help(nil)
		os.Exit(1)
	}

	commands := buildCommands()
	cmd, ok := commands[os.Args[1]]
	if !ok {
		help(commands)
		if os.Args[1] != "help" {
			os.Exit(1)
		}
		return
	}

	path := cmd.flags.String("path", defaultPath, "Path to registry file")
	_ = cmd.flags.Parse(os.Args[2:])
	if err := cmd.run(*path); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func buildCommands() map[string]*command {
	commands := map[string]*command{}

	initFlags := flag.NewFlagSet("init", flag.ExitOnError)
	force := initFlags.Bool("force", false, "Overwrite an existing registry file")
	commands["init"] = &command{
		flags: initFlags,
		usage: "Write the default recommender activity registry",
		run: func(path string) error {
			if _, err := os.Stat(path); err == nil && !*force {
				return fmt.Errorf("%s already exists; use -force to overwrite", path)
			}
			if err := registry.Default().Save(path); err != nil {
				return err
			}
			fmt.Printf("Wrote %d activities to %s\n", len(registry.Default().Activities), path)
			return nil
		},
	}

	addFlags := flag.NewFlagSet("add", flag.ExitOnError)
	a := registry.Activity{}
	addFlags.StringVar(&a.ID, "id", "", "Activity ID (e.g. score-audit)")
	addFlags.StringVar(&a.DisplayName, "displayName", "", "Display name")
	addFlags.StringVar(&a.Description, "description", "", "Description")
	addFlags.StringVar(&a.Category, "category", registry.CategoryRecommendation, "recommendation or communication")
	addFlags.StringVar(&a.TaskType, "taskType", "", "Zeebe task type (defaults to the ID)")
	addFlags.StringVar(&a.Version, "version", "1.0.0", "Version")
	addFlags.StringVar(&a.ImplementationStatus, "status", "planned", "planned, in-progress, completed or verified")
	addFlags.StringVar(&a.Timeout, "timeout", "10s", "Job timeout")
	addFlags.IntVar(&a.Retries, "retries", 0, "Job retries")
	commands["add"] = &command{
		flags: addFlags,
		usage: "Add an activity",
		run: func(path string) error {
			if a.ID == "" || a.DisplayName == "" {
				addFlags.Usage()
				return fmt.Errorf("id and displayName are required")
			}
			if a.TaskType == "" {
				a.TaskType = a.ID
			}
			return edit(path, func(reg *registry.ActivityRegistry) error { return reg.Add(a) })
		},
	}

	updateFlags := flag.NewFlagSet("update", flag.ExitOnError)
	id := updateFlags.String("id", "", "Activity ID to update")
	field := updateFlags.String("field", "", "status, version, displayName, description, category, taskType, timeout or retries")
	value := updateFlags.String("value", "", "New value")
	commands["update"] = &command{
		flags: updateFlags,
		usage: "Change one field of an activity",
		run: func(path string) error {
			if *id == "" || *field == "" || *value == "" {
				updateFlags.Usage()
				return fmt.Errorf("id, field and value are required")
			}
			return edit(path, func(reg *registry.ActivityRegistry) error { return reg.Set(*id, *field, *value) })
		},
	}

	commands["validate"] = &command{
		flags: flag.NewFlagSet("validate", flag.ExitOnError),
		usage: "Check the registry and that every recommender task type is present",
		run: func(path string) error {
			reg, err := registry.LoadRegistry(path)
			if err != nil {
				return err
			}
			if err := reg.Validate(); err != nil {
				return err
			}
			if missing := reg.Missing(registry.Default().TaskTypes()...); len(missing) > 0 {
				return fmt.Errorf("no activity for task types: %s", strings.Join(missing, ", "))
			}
			fmt.Printf("Registry OK: %d activities\n", len(reg.Activities))
			return nil
		},
	}

	commands["list"] = &command{
		flags: flag.NewFlagSet("list", flag.ExitOnError),
		usage: "Print the registered activities",
		run: func(path string) error {
			reg, err := registry.LoadRegistry(path)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TASK TYPE\tCATEGORY\tSTATUS\tTIMEOUT\tRETRIES")
			for _, a := range reg.Activities {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", a.TaskType, a.Category, a.ImplementationStatus, a.Timeout, a.Retries)
			}
			return w.Flush()
		},
	}

	return commands
}

func edit(path string, change func(*registry.ActivityRegistry) error) error {
	reg, err := registry.Open(path)
	if err != nil {
		return err
	}
	if err := change(reg); err != nil {
		return err
	}
	if err := reg.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid registry: %w", err)
	}
	if err := reg.Save(path); err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", path)
	return nil
}

func help(commands map[string]*command) {
	fmt.Println("Usage: registry-updater <command> [-path file] [flags]")
	fmt.Println()
	if commands == nil {
		commands = buildCommands()
	}
	for _, name := range []string{"init", "list", "add", "update", "validate"} {
		fmt.Printf("  %-9s %s\n", name, commands[name].usage)
	}
	fmt.Println()
	fmt.Println("Example: registry-updater add -id score-audit -displayName \"Score Audit\" -retries 2")
}
