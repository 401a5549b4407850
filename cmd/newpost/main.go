// Command newpost creates a Markdown post in the content folder.
//
// The body is read from standard input unless -content is given:
//
//	echo "Hello." | newpost -title "First post"
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/facebookgo/flagenv"

	"github.com/ancientlore/scribe/config"
	"github.com/ancientlore/scribe/logging"
	"github.com/ancientlore/scribe/scaffold"
)

func main() {
	var (
		fDir     = flag.String("content-dir", config.Defaults().ContentDir, "Folder holding the Markdown sources.")
		fTitle   = flag.String("title", "", "Post title (required).")
		fDate    = flag.String("date", "", "Post date as YYYY-MM-DD; today if empty.")
		fContent = flag.String("content", "", "Post body; read from standard input if empty.")
	)
	flag.Parse()
	if err := config.LoadEnvFile(config.EnvFileName); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	flagenv.Parse()

	log := logging.New("info")

	body := *fContent
	if body == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Errorf("Cannot read body: %v", err)
			os.Exit(1)
		}
		body = string(b)
	}

	name, err := scaffold.NewPost(*fDir, scaffold.Post{Title: *fTitle, Date: *fDate, Body: body})
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	log.Infof("Created %s", name)
}
