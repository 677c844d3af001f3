// Package cli implements eventsctl, a terminal front end for the events API.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/clock"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/config"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/editor"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/notify"
	"github.com/sirupsen/logrus"
)

const usage = "usage: eventsctl list | areas [-city ID] | create [flags] | update [flags] ID | retire ID"

var ErrUsage = errors.New(usage)

// Client is the API surface eventsctl needs.
type Client interface {
	editor.Gateway
	Profile(ctx context.Context) (domain.Profile, error)
}

// Run executes one eventsctl command. Results go to out; notifications are
// logged through logger.
func Run(ctx context.Context, args []string, cfg config.ClientConfig, client Client, out io.Writer, logger logrus.FieldLogger) error {
	if len(args) == 0 {
		return ErrUsage
	}
	cmd, rest := args[0], args[1:]

	viewer, err := resolveViewer(ctx, cfg, client, logger)
	if err != nil {
		return err
	}
	loc, err := location(cfg.Timezone)
	if err != nil {
		return err
	}
	session := editor.NewSession(client, viewer,
		editor.WithNotifier(notify.NewLogNotifier(logger)),
		editor.WithClock(clock.NewSystem()),
		editor.WithLocation(loc),
		editor.WithTimeout(cfg.Timeout),
		editor.WithLogger(logger),
	)

	switch cmd {
	case "list":
		return runList(ctx, session, out)
	case "areas":
		return runAreas(ctx, session, rest, out)
	case "create":
		return runCreate(ctx, session, rest, out)
	case "update":
		return runUpdate(ctx, session, rest, out)
	case "retire":
		return runRetire(ctx, session, rest, out)
	}
	return fmt.Errorf("unknown command %q: %w", cmd, ErrUsage)
}

// resolveViewer asks the API who the token belongs to and falls back to the
// configured identity when the profile cannot be read.
func resolveViewer(ctx context.Context, cfg config.ClientConfig, client Client, logger logrus.FieldLogger) (domain.Viewer, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	profile, err := client.Profile(ctx)
	if err == nil {
		return profile.Viewer(), nil
	}
	if cfg.UserID == "" {
		return domain.Viewer{}, fmt.Errorf("resolve viewer: %w", err)
	}
	logger.WithError(err).Warn("profile unavailable, using SPORTSBUDDY_USER_ID")
	role := domain.Role(cfg.Role)
	if role != domain.RoleAdmin {
		role = domain.RoleMember
	}
	return domain.Viewer{UserID: cfg.UserID, Role: role}, nil
}

func location(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

func runList(ctx context.Context, s *editor.Session, out io.Writer) error {
	loadErr := s.Load(ctx)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tTIME\tTITLE\tSPORT\tWHERE\tSPOTS\tMANAGE")
	for _, e := range s.Events() {
		spots := "unlimited"
		if e.MaxParticipants != nil {
			spots = fmt.Sprintf("%d/%d", e.CurrentParticipants, *e.MaxParticipants)
		}
		manage := ""
		if s.CanManage(e) {
			manage = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s-%s\t%s\t%s\t%s, %s\t%s\t%s\n",
			e.ID, e.EventDate, e.StartTime, e.EndTime, e.Title, e.CategoryName,
			e.AreaName, e.CityName, spots, manage)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return loadErr
}

func runAreas(ctx context.Context, s *editor.Session, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("areas", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	city := fs.String("city", "", "only areas of this city id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	_ = s.Load(ctx)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CITY\tAREA ID\tAREA")
	names := make(map[string]string)
	for _, c := range s.Cities() {
		names[c.ID] = c.Name
	}
	areas := s.Areas()
	if *city != "" {
		s.SetCity(*city)
		areas = s.AvailableAreas()
	}
	for _, a := range areas {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", names[a.CityID], a.ID, a.Name)
	}
	return tw.Flush()
}

// draftFlags binds one flag per editable field.
type draftFlags struct {
	fs     *flag.FlagSet
	values map[string]*string
}

var draftFields = []struct {
	name  string
	usage string
	set   func(d *domain.EventDraft, v string)
}{
	{"title", "event title", func(d *domain.EventDraft, v string) { d.Title = v }},
	{"description", "description", func(d *domain.EventDraft, v string) { d.Description = v }},
	{"category", "sport category id", func(d *domain.EventDraft, v string) { d.SportCategoryID = v }},
	{"city", "city id", func(d *domain.EventDraft, v string) { d.CityID = v }},
	{"area", "area id within the city", func(d *domain.EventDraft, v string) { d.AreaID = v }},
	{"date", "event date (YYYY-MM-DD)", func(d *domain.EventDraft, v string) { d.EventDate = v }},
	{"start", "start time (HH:MM)", func(d *domain.EventDraft, v string) { d.StartTime = v }},
	{"end", "end time (HH:MM)", func(d *domain.EventDraft, v string) { d.EndTime = v }},
	{"venue", "venue", func(d *domain.EventDraft, v string) { d.Venue = v }},
	{"max", "max participants, empty for unlimited", func(d *domain.EventDraft, v string) { d.MaxParticipants = v }},
	{"skill", "skill level (beginner, intermediate, advanced, all)", func(d *domain.EventDraft, v string) { d.SkillLevel = v }},
	{"contact", "contact info", func(d *domain.EventDraft, v string) { d.ContactInfo = v }},
}

func newDraftFlags(name string) *draftFlags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	df := &draftFlags{fs: fs, values: make(map[string]*string)}
	for _, f := range draftFields {
		df.values[f.name] = fs.String(f.name, "", f.usage)
	}
	return df
}

// apply copies the flags given on the command line onto d.
func (df *draftFlags) apply(d *domain.EventDraft) {
	set := make(map[string]bool)
	df.fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for _, f := range draftFields {
		if set[f.name] {
			f.set(d, *df.values[f.name])
		}
	}
}

func runCreate(ctx context.Context, s *editor.Session, args []string, out io.Writer) error {
	df := newDraftFlags("create")
	if err := df.fs.Parse(args); err != nil {
		return err
	}
	// A failed reference read only skips the local area check.
	_ = s.Load(ctx)
	if err := s.OpenCreate(); err != nil {
		return err
	}
	s.Change(df.apply)
	if err := s.Submit(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "event created")
	return nil
}

func runUpdate(ctx context.Context, s *editor.Session, args []string, out io.Writer) error {
	df := newDraftFlags("update")
	if err := df.fs.Parse(args); err != nil {
		return err
	}
	if df.fs.NArg() != 1 {
		return fmt.Errorf("update needs exactly one event id: %w", ErrUsage)
	}
	id := df.fs.Arg(0)
	_ = s.Load(ctx)

	event, ok := findEvent(s.Events(), id)
	if !ok {
		return domain.ErrEventNotFound
	}
	if err := s.OpenEdit(event); err != nil {
		return err
	}
	s.Change(df.apply)
	if err := s.Submit(ctx); err != nil {
		return err
	}
	fmt.Fprintf(out, "event %s updated\n", id)
	return nil
}

func runRetire(ctx context.Context, s *editor.Session, args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("retire needs exactly one event id: %w", ErrUsage)
	}
	if err := s.Retire(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(out, "event %s retired\n", args[0])
	return nil
}

func findEvent(events []domain.Event, id string) (domain.Event, bool) {
	for _, e := range events {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Event{}, false
}
