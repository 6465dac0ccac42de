package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func guidMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := uuid.New()
		c.Set("uuid", uuid)
		log.Debugf("Request started: %s %s %s", uuid, c.Request.Method, c.Request.URL.Path)
		c.Next()
		log.Debugf("Request finished: %s status=%d", uuid, c.Writer.Status())
	}
}
