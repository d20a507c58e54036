package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chachabrian/covoiturage-backend/internal/middleware"
	"github.com/chachabrian/covoiturage-backend/internal/repository"
	"github.com/chachabrian/covoiturage-backend/internal/services"
)

const publishTimeout = 5 * time.Second

// keyed is satisfied by every stored model.
type keyed interface {
	PrimaryKey() uint
}

// intValue decodes a JSON number or a numeric string such as "12".
type intValue int64

func (v *intValue) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%s n'est pas un entier", raw)
	}
	*v = intValue(n)
	return nil
}

// resource bundles what the generic list/create/update/delete handlers need
// for one table.
type resource[T keyed] struct {
	name    string
	plural  string // "des passagers"
	single  string // "du passager"
	deleted string
	repo    repository.Repository[T]
	events  services.EventPublisher
}

func (r resource[T]) list() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := r.repo.FindAll(c.Request.Context())
		if err != nil {
			serverError(c, "Erreur lors de la récupération "+r.plural, err)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func (r resource[T]) create(bind func(*gin.Context) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		entity, err := bind(c)
		if err != nil {
			badRequest(c, err)
			return
		}

		if err := r.repo.Create(c.Request.Context(), &entity); err != nil {
			serverError(c, "Erreur lors de la création "+r.single, err)
			return
		}

		r.publish(services.EventCreated, entity.PrimaryKey(), entity)
		c.JSON(http.StatusCreated, entity)
	}
}

func (r resource[T]) update(bind func(*gin.Context) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		entity, err := bind(c)
		if err != nil {
			badRequest(c, err)
			return
		}

		if err := r.repo.Update(c.Request.Context(), id, &entity); err != nil {
			serverError(c, "Erreur lors de la mise à jour "+r.single, err)
			return
		}

		r.publish(services.EventUpdated, id, entity)
		c.JSON(http.StatusOK, entity)
	}
}

func (r resource[T]) remove() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		if err := r.repo.Delete(c.Request.Context(), id); err != nil {
			serverError(c, "Erreur lors de la suppression "+r.single, err)
			return
		}

		r.publish(services.EventDeleted, id, nil)
		c.JSON(http.StatusOK, gin.H{"message": r.deleted})
	}
}

// publish runs in the background so a slow listener never delays the
// response.
func (r resource[T]) publish(eventType string, id uint, data interface{}) {
	if r.events == nil {
		return
	}
	event := services.NewChangeEvent(eventType, r.name, id, data)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		r.events.Publish(ctx, event)
	}()
}

// bindJSON decodes the request body into a fresh In and converts it.
func bindJSON[In any, T any](convert func(In) T) func(*gin.Context) (T, error) {
	return func(c *gin.Context) (T, error) {
		var input In
		if err := c.ShouldBindJSON(&input); err != nil {
			var zero T
			return zero, err
		}
		return convert(input), nil
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erreur": "Identifiant invalide"})
		return 0, false
	}
	return uint(id), true
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"erreur":  "Requête invalide",
		"details": err.Error(),
	})
}

// serverError logs the real cause and answers with a generic message.
func serverError(c *gin.Context, message string, err error) {
	log.Printf("%s (request_id=%s): %v", message, middleware.GetRequestID(c), err)
	c.JSON(http.StatusInternalServerError, gin.H{"erreur": message})
}
