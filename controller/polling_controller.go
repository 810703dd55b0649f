// console/controller/polling_controller.go
package controller

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

// PollingOwner is a service that keeps background pollers by key.
type PollingOwner interface {
	StopPolling(key string) bool
	PollingKeys() []string
}

// PollingController lists and stops the pollers started with ?poll=true.
type PollingController struct {
	owners []PollingOwner
}

func NewPollingController(owners ...PollingOwner) *PollingController {
	return &PollingController{owners: owners}
}

func (pc *PollingController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/polling", pc.ListPolling)
	r.DELETE("/polling", pc.StopAllPolling)
	r.DELETE("/polling/:key", pc.StopPolling)
}

func (pc *PollingController) ListPolling(c *gin.Context) {
	keys := []string{}
	for _, owner := range pc.owners {
		keys = append(keys, owner.PollingKeys()...)
	}
	sort.Strings(keys)
	c.JSON(http.StatusOK, gin.H{"keys": keys})
}

// StopPolling stops the poller with the given key, whichever service owns it.
func (pc *PollingController) StopPolling(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		util.RespondWithError(c, http.StatusBadRequest, "Polling key is required", nil)
		return
	}
	for _, owner := range pc.owners {
		if owner.StopPolling(key) {
			logger.Info("Polling stopped", zap.String("key", key))
			c.Status(http.StatusNoContent)
			return
		}
	}
	util.RespondWithError(c, http.StatusNotFound, "No active poller for key "+key, nil)
}

func (pc *PollingController) StopAllPolling(c *gin.Context) {
	stopped := 0
	for _, owner := range pc.owners {
		for _, key := range owner.PollingKeys() {
			if owner.StopPolling(key) {
				stopped++
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"stopped": stopped})
}
