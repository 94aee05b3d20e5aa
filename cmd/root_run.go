package cmd

import (
	"context"
	"fuelprice/api"
	"fuelprice/config"
	"fuelprice/data"
	"fuelprice/price"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// lookup runs one price lookup for q and returns the payload to send.
func lookup(ctx context.Context, f *price.Fetcher, q data.Query) interface{} {
	result, err := f.Fetch(ctx, q)
	if err != nil {
		log.WithFields(log.Fields{
			"fuel": q.Fuel,
			"city": q.City,
		}).WithError(err).Error("price lookup error")
		return api.FromError(err)
	}
	return result
}

func getPriceMethod(f *price.Fetcher, defaults data.Query) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := data.QueryFromPath(c.Param("path"), defaults)
		if !ok {
			c.PureJSON(http.StatusOK, api.Usage)
			return
		}
		c.PureJSON(http.StatusOK, lookup(c.Request.Context(), f, q))
	}
}

func newRouter(f *price.Fetcher, defaults data.Query) *gin.Engine {
	router := gin.Default()
	// Segments are split on the path as sent, %2F stays inside its segment.
	router.UseRawPath = true
	router.UnescapePathValues = false
	router.GET("/*path", getPriceMethod(f, defaults))
	return router
}

func run(cmd *cobra.Command, args []string) {
	gin.SetMode(config.C.Server.Mode)

	srv := &http.Server{
		Addr:    config.C.Server.Bind,
		Handler: newRouter(newFetcher(config.C), defaultQuery(config.C)),
	}

	go func() {
		log.WithField("bind", srv.Addr).Info("starting fuel price server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("fuel price server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	exitChan := make(chan struct{})
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	log.WithField("signal", <-sigChan).Info("signal received")
	go func() {
		log.Warning("stopping fuel price server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.WithError(err).Error("server shutdown error")
		}
		exitChan <- struct{}{}
	}()
	select {
	case <-exitChan:
	case s := <-sigChan:
		log.WithField("signal", s).Info("signal received, stop immediately")
	}
}
