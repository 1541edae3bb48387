// Package cmdtree dispatches command-line arguments to a declared tree of commands.
//
// An [App] is described once, with nested [Command] values, their aliases and their [Flag]
// definitions, and then run with the process arguments:
//
//	app := &cmdtree.App{
//		Name: "greet",
//		Commands: []*cmdtree.Command{{
//			Name:    "hello",
//			Aliases: []string{"h"},
//			Flags:   []*cmdtree.Flag{cmdtree.NewFlag("age", cmdtree.IntFlag, "a")},
//			Action: func(c *cmdtree.Context) error {
//				age, err := c.Int("age")
//				...
//			},
//		}},
//	}
//	if err := app.Run(os.Args); err != nil {
//		fmt.Fprintln(os.Stderr, err)
//		os.Exit(1)
//	}
//
// Flags are resolved lazily. Nothing is validated until an action asks for a flag, and each
// accessor returns its own [*FlagError], so the action decides which flags are required and which
// failures are only worth a warning.
package cmdtree
