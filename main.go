/*
Scribe builds a static blog from a folder of Markdown files.

Each ".md" file in the content folder must begin with a header:

	---
	title: "Some Title"
	date: 2024-05-01
	---

	The post body, in Markdown.

The site is written to the output folder:

	index.html              newest posts
	page/<n>/index.html     older posts
	posts/<slug>.html       one page per post

Settings come from scribe.toml, .env, the environment, and flags, in that order; see
package config. Run "scribe -h" for the flags.

Exit status is 0 on success, 1 for a configuration problem, and 2 when the build fails.
*/
package main

import (
	"os"

	"github.com/ancientlore/scribe/build"
	"github.com/ancientlore/scribe/config"
	"github.com/ancientlore/scribe/logging"
)

func main() {
	os.Exit(run(".", os.Args[1:]))
}

// run performs one build in folder dir and returns the exit status.
func run(dir string, args []string) int {
	cfg, err := config.Load(dir, "scribe", args)
	if err != nil {
		logging.New("error").Errorf("Configuration: %v", err)
		return 1
	}
	log := logging.New(cfg.LogLevel)
	log.Debugf("Settings: %+v", cfg)

	sum, err := build.Run(cfg, log)
	if err != nil {
		log.Errorf("Build failed: %v", err)
		return 2
	}
	log.Infof("Built %d posts on %d pages (%d skipped)", sum.Posts, sum.Pages, sum.Skipped)
	return 0
}
