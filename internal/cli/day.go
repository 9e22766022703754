package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/calendario/internal/calendar"
	"github.com/pfrederiksen/calendario/internal/dates"
	"github.com/pfrederiksen/calendario/internal/event"
	"github.com/pfrederiksen/calendario/internal/view"
)

const dayHelp = `Comandi:
  add HH:00 <descrizione>   aggiungi un evento
  info HH:00                dettagli dell'evento in quell'ora
  delete HH:00              elimina l'evento in quell'ora
  list                      tutti gli eventi in ordine di inserimento
  show                      mostra di nuovo la giornata
  export                    esporta la giornata in formato iCalendar
  help                      questo messaggio
  quit                      esci
`

func newDayCmd(a *app) *cobra.Command {
	var (
		once   bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "day YYYY-MM-DD",
		Short: "Open a day screen in the terminal",
		Long: `Open a day screen showing 24 hourly slots. Commands are read from stdin
and the screen is redrawn after every change. Events are discarded on exit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			date, err := dates.ParseDate(args[0])
			if err != nil {
				return err
			}

			screen, err := view.NewScreen(date, a.cfg.SeedEvents, a.cfg.DisplayLocale())
			if err != nil {
				return err
			}
			defer screen.Close()

			if once {
				return WriteDay(cmd.OutOrStdout(), screen, f)
			}
			return newDayShell(screen, cmd.InOrStdin(), cmd.OutOrStdout()).run()
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Print the day screen and exit")
	cmd.Flags().StringVar(&format, "format", "text", "Output format with --once: text or json")

	return cmd
}

// dayShell drives a Screen from line-oriented commands.
type dayShell struct {
	screen *view.Screen
	in     *bufio.Scanner
	out    io.Writer
}

func newDayShell(screen *view.Screen, in io.Reader, out io.Writer) *dayShell {
	return &dayShell{
		screen: screen,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

func (sh *dayShell) run() error {
	unsubscribe := sh.screen.OnChange(func(event.Change) {
		sh.render()
	})
	defer unsubscribe()

	sh.render()
	for {
		fmt.Fprint(sh.out, "> ")
		if !sh.in.Scan() {
			fmt.Fprintln(sh.out)
			return sh.in.Err()
		}
		if quit := sh.exec(strings.TrimSpace(sh.in.Text())); quit {
			return nil
		}
	}
}

func (sh *dayShell) render() {
	fmt.Fprintln(sh.out)
	_ = writeDayText(sh.out, sh.screen)
}

// exec runs one command line and reports whether the shell should exit.
func (sh *dayShell) exec(line string) bool {
	if line == "" {
		return false
	}
	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(name) {
	case "add":
		slot, desc, _ := strings.Cut(rest, " ")
		_, err := sh.screen.Submit(view.AddEventForm{Time: slot, Description: strings.TrimSpace(desc)})
		if err != nil {
			sh.fail(err)
		}
	case "info":
		if evt := sh.eventAt(rest); evt != nil {
			writeEventDetail(sh.out, evt)
		}
	case "delete", "del", "rm":
		if evt := sh.eventAt(rest); evt != nil {
			if err := sh.screen.Delete(evt.ID); err != nil {
				sh.fail(err)
			}
		}
	case "list", "ls":
		writeEventList(sh.out, sh.screen.Events())
	case "show":
		sh.render()
	case "export":
		body, _ := calendar.GenerateICS(sh.screen.Date, sh.screen.Events())
		fmt.Fprint(sh.out, body)
	case "help", "?":
		fmt.Fprint(sh.out, dayHelp)
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(sh.out, "comando sconosciuto: %s (digita help)\n", name)
	}
	return false
}

// eventAt returns the event shown in a slot, as the screen displays it.
func (sh *dayShell) eventAt(label string) *event.Event {
	if !dates.IsHourSlot(label) {
		fmt.Fprintf(sh.out, "ora non valida: %q\n", label)
		return nil
	}
	for _, slot := range sh.screen.Slots() {
		if slot.Label == label {
			if slot.Event == nil {
				fmt.Fprintf(sh.out, "%s: %s\n", label, view.EmptySlotLabel)
			}
			return slot.Event
		}
	}
	return nil
}

func (sh *dayShell) fail(err error) {
	var fe view.FieldErrors
	if errors.As(err, &fe) {
		fmt.Fprintf(sh.out, "errore: %s\n", fe.Error())
		return
	}
	fmt.Fprintf(sh.out, "errore: %v\n", err)
}
