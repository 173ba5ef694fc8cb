package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"dungeonforge/pkg/dungeon"
	"dungeonforge/pkg/engine/input"
	"dungeonforge/pkg/engine/terminal"
	"dungeonforge/pkg/game/devtools"
	"dungeonforge/pkg/game/floor"
	"dungeonforge/pkg/game/generator"
)

//go:embed locales/*.po
var locales embed.FS

const defaultLanguage = "en"

// loadLocale parses the embedded catalogue for lang, falling back to English
func loadLocale(lang string) (*gotext.Po, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_-."); i > 0 {
		lang = lang[:i]
	}
	data, err := locales.ReadFile("locales/" + lang + ".po")
	if err != nil {
		data, err = locales.ReadFile("locales/" + defaultLanguage + ".po")
		if err != nil {
			return nil, err
		}
	}
	po := gotext.NewPo()
	po.Parse(data)
	return po, nil
}

type options struct {
	generator  string
	level      int
	seed       int64
	rasterizer string
	dump       string
	html       string
	color      bool
	lang       string
	browse     bool
	verbose    bool
}

// session holds what the browse loop can change between floors
type session struct {
	out  io.Writer
	po   *gotext.Po
	cfg  generator.Config
	name string

	level int
	seed  int64
	last  *generator.Result
}

func (s *session) generate() (*generator.Result, error) {
	if s.name == "showcase" {
		return devtools.Showcase()
	}
	cfg := s.cfg
	cfg.Seed = s.seed
	gen, err := generator.ByName(s.name, cfg)
	if err != nil {
		return nil, err
	}
	return gen.GenerateDetailed(s.level)
}

// show prints a floor, or dumps it to a file when the terminal is too narrow
func (s *session) show(res *generator.Result) error {
	if res.Level > 0 {
		fmt.Fprintln(s.out, s.po.Get("FLOOR_HEADER", res.Level, floor.TotalFloors, res.Theme, res.Generator, res.Seed))
		fmt.Fprintln(s.out, floor.FlavourText(s.po, res.Level))
	} else {
		fmt.Fprintln(s.out, res.Generator)
	}
	fmt.Fprintln(s.out, s.po.Get("ROOMS_SUMMARY", res.Placed, res.Dropped, res.Stitched, res.Connections))
	fmt.Fprintln(s.out)

	columns := 2*res.Grid.Width() + 1
	if !terminal.Fits(columns) {
		width, _ := terminal.GetSize()
		fmt.Fprintln(s.out, s.po.Get("MAP_TOO_WIDE", columns, width))
		return s.dump(res, "")
	}
	fmt.Fprint(s.out, devtools.RenderColor(res.Grid))
	return nil
}

func (s *session) dump(res *generator.Result, path string) error {
	written, err := devtools.DumpMapToFile(res, path)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, s.po.Get("DUMP_WRITTEN", written))
	return nil
}

func (s *session) saveHTML(res *generator.Result, path string) error {
	written, err := devtools.SaveMapHTML(res, path)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, s.po.Get("HTML_WRITTEN", written))
	return nil
}

func (s *session) help() {
	fmt.Fprintln(s.out, s.po.Get("BROWSE_HELP"))
	byAction := input.GetBindingsByAction()
	actions := make([]input.Action, 0, len(byAction))
	for act := range byAction {
		actions = append(actions, act)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	for _, act := range actions {
		fmt.Fprintf(s.out, "  %-18s %s\n", input.ActionName(act), strings.Join(byAction[act], ", "))
	}
}

// apply runs one browse action. It returns false when the loop should stop.
func (s *session) apply(act input.Action) (bool, error) {
	switch act {
	case input.ActionQuit:
		return false, nil
	case input.ActionHelp:
		s.help()
		return true, nil
	case input.ActionDump:
		return true, s.dump(s.last, "")
	case input.ActionScreenshot:
		return true, s.saveHTML(s.last, "")
	case input.ActionNextSeed:
		s.seed = s.last.Seed + 1
	case input.ActionLevelUp:
		if s.level < floor.TotalFloors {
			s.level = floor.NextFloor(s.level)
		}
	case input.ActionLevelDown:
		if s.level > 1 {
			s.level--
		}
	case input.ActionSwitchGenerator:
		names := generator.Names()
		next := names[0]
		for i, name := range names {
			if name == s.name {
				next = names[(i+1)%len(names)]
			}
		}
		s.name = next
	case input.ActionShowcase:
		s.name = "showcase"
	default:
		return true, nil
	}

	res, err := s.generate()
	if err != nil {
		return true, err
	}
	s.last = res
	return true, s.show(res)
}

func (s *session) browse() error {
	for {
		fmt.Fprint(s.out, "\n> ")
		raw, err := input.ReadKey(os.Stdin)
		if errors.Is(err, io.EOF) || errors.Is(err, input.ErrInterrupted) {
			fmt.Fprintln(s.out, s.po.Get("GOODBYE"))
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out)

		intent := input.MapToIntent(input.NewDebouncedInput(raw))
		if intent.Action == input.ActionNone {
			if raw.Code != "" {
				fmt.Fprintln(s.out, s.po.Get("UNKNOWN_KEY", raw.Code))
			}
			continue
		}
		more, err := s.apply(intent.Action)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if !more {
			fmt.Fprintln(s.out, s.po.Get("GOODBYE"))
			return nil
		}
	}
}

func run(opts options) error {
	color.Enable = opts.color

	po, err := loadLocale(opts.lang)
	if err != nil {
		return err
	}

	cfg := generator.Config{}
	if opts.verbose {
		cfg.Logger = log.New(os.Stderr, "dungeonforge: ", 0)
	}
	if opts.rasterizer != "" {
		strategy, ok := dungeon.ParseRasterizer(opts.rasterizer)
		if !ok {
			return fmt.Errorf("unknown rasterizer %q", opts.rasterizer)
		}
		cfg.Rasterizer = strategy
	}

	if opts.level < 1 || opts.level > floor.TotalFloors {
		return fmt.Errorf("level must be between 1 and %d, got %d", floor.TotalFloors, opts.level)
	}

	s := &session{
		out:   os.Stdout,
		po:    po,
		cfg:   cfg,
		name:  strings.ToLower(opts.generator),
		level: opts.level,
		seed:  opts.seed,
	}

	res, err := s.generate()
	if err != nil {
		return err
	}
	s.last = res
	if err := s.show(res); err != nil {
		return err
	}
	if opts.dump != "" {
		if err := s.dump(res, opts.dump); err != nil {
			return err
		}
	}
	if opts.html != "" {
		if err := s.saveHTML(res, opts.html); err != nil {
			return err
		}
	}

	if opts.browse {
		return s.browse()
	}
	return nil
}

func main() {
	var opts options
	flag.StringVar(&opts.generator, "generator", "rooms", "floor generator: "+strings.Join(append(generator.Names(), "showcase"), ", "))
	flag.IntVar(&opts.level, "level", 1, "floor level to generate")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	flag.StringVar(&opts.rasterizer, "rasterizer", "", "corridor strategy for every connection (Elbow, ShortestPathUsingExisting, Opening, None)")
	flag.StringVar(&opts.dump, "dump", "", "also write a text dump of the floor to this file")
	flag.StringVar(&opts.html, "html", "", "also write an HTML rendering of the floor to this file")
	flag.BoolVar(&opts.color, "color", true, "colour the map")
	flag.StringVar(&opts.lang, "lang", os.Getenv("LANG"), "message language")
	flag.BoolVar(&opts.browse, "browse", false, "browse floors interactively after the first one")
	flag.BoolVar(&opts.verbose, "v", false, "log generation details to stderr")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "dungeonforge:", err)
		os.Exit(1)
	}
}
