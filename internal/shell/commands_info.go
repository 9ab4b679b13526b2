package shell

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/archora/archora/internal/fixture"
	"github.com/archora/archora/pkg/archora"
)

const (
	skillBarWidth = 20
	defaultArt    = "logo"
)

// utcLayout matches what browsers print for Date.toUTCString.
const utcLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

var jokes = []string{
	"Why do programmers prefer dark mode? Because light attracts bugs! 🐛",
	"Why did the developer go broke? Because he used up all his cache! 💸",
	"What's a programmer's favorite hangout place? Foo Bar! 🍺",
}

// builtinCommands returns the dispatch table in the order help lists it.
func builtinCommands() []command {
	return []command{
		{name: "help", summary: "Show this help", run: runHelp},
		{name: "about", summary: "Profile info", run: runAbout},
		{name: "skills", summary: "Tech skills", run: runSkills},
		{name: "projects", summary: "Show projects", run: runProjects},
		{name: "contact", summary: "Contact info", run: runContact},
		{name: "time", summary: "Current time", run: runTime},
		{name: "ls", summary: "List files", run: runLs},
		{name: "cd", summary: "Change directory", run: runCd},
		{name: "mkdir", summary: "Make directory", run: runMkdir},
		{name: "touch", summary: "Create file", run: runTouch},
		{name: "rm", summary: "Remove file", run: runRm},
		{name: "cat", summary: "View file", run: runCat},
		{name: "pwd", summary: "Current path", run: runPwd},
		{name: "ps", summary: "Process status", run: runPs},
		{name: "game", summary: "Play games", run: runGame},
		{name: "ascii", summary: "ASCII art", run: runASCII},
		{name: "joke", summary: "Random joke", run: runJoke},
		{name: "neofetch", summary: "System info", run: runNeofetch},
		{name: "clear", summary: "Clear screen", run: runClear},
	}
}

func runHelp(_ *Interpreter, _ []string) Result {
	var b strings.Builder
	b.WriteString("📚 Available Commands\n")
	for _, c := range builtinCommands() {
		if c.name == "help" {
			continue
		}
		fmt.Fprintf(&b, "  %-9s - %s\n", c.name, c.summary)
	}
	b.WriteString("\n💡 Tip: Use Tab to autocomplete, Up/Down for history")
	return Output(FormatPlain, b.String())
}

func runAbout(in *Interpreter, _ []string) Result {
	p := in.Profile()
	return Output(FormatPlain, fmt.Sprintf("👤 %s\nRole: %s\nLocation: %s\nFun Fact: %s",
		p.Name, p.Role, p.Location(), p.Fun))
}

func runSkills(in *Interpreter, _ []string) Result {
	p := in.Profile()

	width := 0
	for _, s := range p.Skills {
		width = max(width, len(s.Name))
	}

	var b strings.Builder
	b.WriteString("🛠️ Technical Skills")
	for _, s := range p.Skills {
		fmt.Fprintf(&b, "\n  %-*s [%s] %3d%%", width, s.Name, skillBar(s.Level), s.Level)
	}
	return Output(FormatPlain, b.String())
}

func skillBar(level int) string {
	level = min(max(level, 0), 100)
	filled := level * skillBarWidth / 100
	return strings.Repeat("#", filled) + strings.Repeat("-", skillBarWidth-filled)
}

func runProjects(in *Interpreter, _ []string) Result {
	p := in.Profile()
	if len(p.Projects) == 0 {
		return Output(FormatPlain, "No projects yet.")
	}

	var b strings.Builder
	b.WriteString("📁 Projects")
	for _, proj := range p.Projects {
		fmt.Fprintf(&b, "\n\n  %s ⭐ %d\n  %s\n  [%s]", proj.Name, proj.Stars, proj.Desc, strings.Join(proj.Tech, "] ["))
	}
	return Output(FormatPlain, b.String())
}

func runContact(in *Interpreter, _ []string) Result {
	p := in.Profile()
	return Output(FormatPlain, fmt.Sprintf("📧 Contact Information\nEmail: %s\nGitHub: %s\nLocation: %s",
		p.Email, p.GitHub, p.Location()))
}

func runTime(in *Interpreter, _ []string) Result {
	now := in.clock()
	return Output(FormatPlain, fmt.Sprintf("Local: %s\nUTC: %s",
		now.Format("1/2/2006, 3:04:05 PM"), now.UTC().Format(utcLayout)))
}

func runPs(_ *Interpreter, _ []string) Result {
	return Output(FormatPlain, strings.Join([]string{
		"PID   TTY     TIME      CMD",
		"1     ?       00:00:01  init",
		"42    pts/0   00:00:00  zsh",
		"69    pts/0   00:00:00  ps",
	}, "\n"))
}

func runGame(_ *Interpreter, _ []string) Result {
	return Output(FormatPlain, "🎮 Available Games\nNo games are installed on this terminal.")
}

func runASCII(_ *Interpreter, args []string) Result {
	name := defaultArt
	if len(args) > 0 {
		name = args[0]
	}
	art, ok := fixture.Art(name)
	if !ok {
		return Failure(InvalidArgument, fmt.Sprintf("Unknown art: %s", name))
	}
	return Output(FormatArt, art)
}

func runJoke(in *Interpreter, _ []string) Result {
	return Output(FormatPlain, "😂 Random Joke\n"+jokes[in.intn(len(jokes))])
}

func runNeofetch(in *Interpreter, _ []string) Result {
	p := in.Profile()
	tux, _ := fixture.Art("tux")

	up := in.clock().Sub(in.session.Started).Truncate(time.Second)
	if up < 0 {
		up = 0
	}
	secs := int(up / time.Second)

	info := strings.Join([]string{
		fmt.Sprintf("%s@%s", p.Name, archora.HostName),
		"------------------------",
		"OS: ArchoraOS",
		fmt.Sprintf("Host: %s/%s", runtime.GOOS, runtime.GOARCH),
		fmt.Sprintf("Uptime: %dh %dm %ds", secs/3600, secs%3600/60, secs%60),
		"Shell: ZSH",
		fmt.Sprintf("Commands: %d", in.session.Commands),
	}, "\n")

	return Output(FormatArt, lipgloss.JoinHorizontal(lipgloss.Top, tux, "   ", info))
}

func runClear(_ *Interpreter, _ []string) Result {
	r := Silent()
	r.Clear = true
	return r
}
