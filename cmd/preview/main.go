// Command preview serves a built site on a local address until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ancientlore/cachefs"
	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"

	"github.com/ancientlore/scribe/config"
	"github.com/ancientlore/scribe/logging"
	"github.com/ancientlore/scribe/preview"
)

func main() {
	var (
		fAddr      = flag.String("addr", ":9000", "Server address.")
		fOutput    = flag.String("output-dir", config.Defaults().OutputDir, "Folder holding the built site.")
		fCacheSize = flag.Int64("cache-size", 10*1024*1024, "Size of the file cache in bytes.")
		fCacheTime = flag.Duration("cache-time", 2*time.Second, "How long cached files are kept; 0 disables expiration.")
		fLogLevel  = flag.String("log-level", config.Defaults().LogLevel, "Log level: debug, info, warn, or error.")
	)
	flag.Parse()
	flagenv.Parse()

	log := logging.New(*fLogLevel)

	info, err := os.Stat(*fOutput)
	if err != nil || !info.IsDir() {
		log.Errorf("Cannot serve %q; run a build first", *fOutput)
		os.Exit(1)
	}

	// groupcache with no peers
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })
	site := cachefs.New(os.DirFS(*fOutput), &cachefs.Config{GroupName: "preview", SizeInBytes: *fCacheSize, Duration: *fCacheTime})

	srv := http.Server{
		Addr:              *fAddr,
		Handler:           preview.Handler(site, map[string]string{"X-Content-Type-Options": "nosniff"}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// graceful shutdown on SIGINT or SIGTERM
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Warnf("HTTP server Shutdown: %v", err)
		}
	}()

	log.Infof("Serving %q on %s", *fOutput, *fAddr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Errorf("HTTP server: %v", err)
		os.Exit(2)
	}
	log.Infof("Goodbye.")
}
