// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// serveCommand starts the HTTP API server.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the study notes HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Host to bind to (overrides config)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (overrides config)",
			},
		},
		Action: r.Serve,
	}
}

// videoCommand processes a single video into notes.
func videoCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "video",
		Aliases: []string{"v"},
		Usage:   "Generate study notes for one video",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "url",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
				Value: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write notes as Markdown to this directory",
			},
		},
		Action: r.Video,
	}
}

// batchCommand processes several videos at once.
func batchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "batch",
		Aliases: []string{"b"},
		Usage:   "Generate study notes for multiple videos",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write each video's notes as Markdown to this directory",
			},
		},
		Action: r.Batch,
	}
}

// playlistCommand processes a whole playlist.
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Generate study notes for every video in a playlist",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "url",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write each video's notes as Markdown to this directory",
			},
		},
		Action: r.Playlist,
	}
}

// configCommand handles configuration file management.
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write an example config.toml to the current directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "Destination path for the config file",
						Value:   "config.toml",
					},
				},
				Action: r.ConfigInit,
			},
		},
	}
}
