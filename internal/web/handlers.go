package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/pfrederiksen/calendario/internal/calendar"
	"github.com/pfrederiksen/calendario/internal/dates"
	"github.com/pfrederiksen/calendario/internal/event"
	"github.com/pfrederiksen/calendario/internal/logger"
	"github.com/pfrederiksen/calendario/internal/view"
)

type gridPage struct {
	PageTitle string
	Grid      *view.Grid
	ScrollTo  int
}

type dayPage struct {
	PageTitle  string
	ScreenID   string
	Title      string
	Slots      []view.Slot
	Revision   int
	EmptyLabel string
}

type addPage struct {
	PageTitle string
	ScreenID  string
	Hours     []string
	Form      view.AddEventForm
	Errors    view.FieldErrors
}

type detailPage struct {
	PageTitle string
	ScreenID  string
	Event     *event.Event
}

type errorPage struct {
	PageTitle string
	Message   string
}

type screenResponse struct {
	ID       string         `json:"id"`
	Date     dates.Date     `json:"date"`
	Title    string         `json:"title"`
	Revision int            `json:"revision"`
	Slots    []view.Slot    `json:"slots"`
	Events   []*event.Event `json:"events"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (s *Server) handleGrid(c *gin.Context) {
	c.HTML(http.StatusOK, "grid", gridPage{
		PageTitle: "Calendario",
		Grid:      s.grid,
		ScrollTo:  s.cfg.ScrollToYear,
	})
}

// handleOpenDay opens a new screen for the day and redirects to it.
func (s *Server) handleOpenDay(c *gin.Context) {
	date, err := dateParams(c)
	if err == nil {
		err = date.Validate()
	}
	if err != nil {
		renderError(c, http.StatusNotFound, "Giorno non valido")
		return
	}

	screen, err := view.NewScreen(date, s.seed, s.cfg.DisplayLocale())
	if err != nil {
		logger.Error("Failed to open day screen", logger.Fields{"date": date.String()}, err)
		renderError(c, http.StatusInternalServerError, "Errore interno")
		return
	}
	s.screens.add(screen)

	c.Redirect(http.StatusSeeOther, "/screens/"+screen.ID)
}

func (s *Server) handleDay(c *gin.Context) {
	s.withScreen(c, func(screen *view.Screen) {
		c.HTML(http.StatusOK, "day", newDayPage(screen))
	})
}

func (s *Server) handleNewEventForm(c *gin.Context) {
	s.withScreen(c, func(screen *view.Screen) {
		c.HTML(http.StatusOK, "add", addPage{
			PageTitle: "Aggiungi Evento",
			ScreenID:  screen.ID,
			Hours:     dates.HourSlots(),
		})
	})
}

func (s *Server) handleCreateEvent(c *gin.Context) {
	s.withScreen(c, func(screen *view.Screen) {
		var form view.AddEventForm
		if err := c.ShouldBind(&form); err != nil {
			renderError(c, http.StatusBadRequest, "Richiesta non valida")
			return
		}

		evt, err := screen.Submit(form)
		if err != nil {
			var fe view.FieldErrors
			if !errors.As(err, &fe) {
				logger.Error("Failed to add event", logger.Fields{"screen_id": screen.ID}, err)
				renderError(c, http.StatusInternalServerError, "Errore interno")
				return
			}
			c.HTML(http.StatusUnprocessableEntity, "add", addPage{
				PageTitle: "Aggiungi Evento",
				ScreenID:  screen.ID,
				Hours:     dates.HourSlots(),
				Form:      form,
				Errors:    fe,
			})
			return
		}

		logger.Info("Event added", logger.Fields{
			"screen_id": screen.ID,
			"event_id":  evt.ID,
			"time":      evt.Time,
		})
		c.Redirect(http.StatusSeeOther, "/screens/"+screen.ID)
	})
}

func (s *Server) handleEventDetail(c *gin.Context) {
	s.withScreen(c, func(screen *view.Screen) {
		evt, ok := screen.Event(c.Param("event"))
		if !ok {
			renderError(c, http.StatusNotFound, "Evento non trovato")
			return
		}
		c.HTML(http.StatusOK, "detail", detailPage{
			PageTitle: "Dettagli Evento",
			ScreenID:  screen.ID,
			Event:     evt,
		})
	})
}

func (s *Server) handleDeleteEvent(c *gin.Context) {
	s.withScreen(c, func(screen *view.Screen) {
		id := c.Param("event")
		if err := screen.Delete(id); err != nil {
			if errors.Is(err, event.ErrNotFound) {
				renderError(c, http.StatusNotFound, "Evento non trovato")
				return
			}
			logger.Error("Failed to delete event", logger.Fields{"screen_id": screen.ID, "event_id": id}, err)
			renderError(c, http.StatusInternalServerError, "Errore interno")
			return
		}

		logger.Info("Event deleted", logger.Fields{"screen_id": screen.ID, "event_id": id})
		c.Redirect(http.StatusSeeOther, "/screens/"+screen.ID)
	})
}

func (s *Server) handleExport(c *gin.Context) {
	s.withScreen(c, func(screen *view.Screen) {
		body, n := calendar.GenerateICS(screen.Date, screen.Events())
		logger.Debug("Exported day", logger.Fields{"screen_id": screen.ID, "events": n})

		c.Header("Content-Disposition", `attachment; filename="`+calendar.Filename(screen.Date)+`"`)
		c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
	})
}

func (s *Server) handleScreenJSON(c *gin.Context) {
	entry, ok := s.screens.get(c.Param("screen"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "screen not found"})
		return
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	screen := entry.screen
	c.JSON(http.StatusOK, screenResponse{
		ID:       screen.ID,
		Date:     screen.Date,
		Title:    screen.Title(),
		Revision: screen.Revision(),
		Slots:    screen.Slots(),
		Events:   screen.Events(),
	})
}

func (s *Server) handleMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, logger.GetMetricsSnapshot())
}

// withScreen runs fn while holding the screen's lock, or renders 404.
func (s *Server) withScreen(c *gin.Context, fn func(*view.Screen)) {
	entry, ok := s.screens.get(c.Param("screen"))
	if !ok {
		renderError(c, http.StatusNotFound, "Schermata scaduta")
		return
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	fn(entry.screen)
}

func newDayPage(screen *view.Screen) dayPage {
	return dayPage{
		PageTitle:  "Dettagli Giorno",
		ScreenID:   screen.ID,
		Title:      screen.Title(),
		Slots:      screen.Slots(),
		Revision:   screen.Revision(),
		EmptyLabel: view.EmptySlotLabel,
	}
}

func dateParams(c *gin.Context) (dates.Date, error) {
	var d dates.Date
	var err error
	if d.Year, err = strconv.Atoi(c.Param("year")); err != nil {
		return d, errors.Wrap(err, "year")
	}
	if d.Month, err = strconv.Atoi(c.Param("month")); err != nil {
		return d, errors.Wrap(err, "month")
	}
	if d.Day, err = strconv.Atoi(c.Param("day")); err != nil {
		return d, errors.Wrap(err, "day")
	}
	return d, nil
}

func renderError(c *gin.Context, status int, msg string) {
	c.HTML(status, "error", errorPage{
		PageTitle: http.StatusText(status),
		Message:   msg,
	})
}
