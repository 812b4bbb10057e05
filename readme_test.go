package traderbook

import (
	"os"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// This file lints README.md: every bash example must document the tb
// binary, and every command must be mentioned somewhere in the file.

var documentedCommands = []string{
	"summary", "buy", "sell", "deposit", "withdraw",
	"trades", "funds", "trade", "position", "update", "delete",
	"plan", "exit-price", "calc", "convert", "prices",
	"import", "accounts", "check", "reset",
}

func parseReadme(t *testing.T) ([]byte, ast.Node) {
	t.Helper()
	source, err := os.ReadFile("README.md")
	if err != nil {
		t.Fatalf("failed to read README.md: %v", err)
	}
	doc := goldmark.New().Parser().Parse(text.NewReader(source))
	return source, doc
}

func TestReadmeBashBlocksUseTb(t *testing.T) {
	source, doc := parseReadme(t)

	var blocks int
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || string(fcb.Language(source)) != "bash" {
			return ast.WalkContinue, nil
		}
		blocks++
		lines := fcb.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			line := strings.TrimSpace(string(seg.Value(source)))
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if !strings.HasPrefix(line, "tb ") && !strings.HasPrefix(line, "go install ") {
				t.Errorf("bash example does not document the tb binary: %q", line)
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking README.md: %v", err)
	}
	if blocks == 0 {
		t.Error("README.md has no bash examples")
	}
}

func TestReadmeMentionsEveryCommand(t *testing.T) {
	source, _ := parseReadme(t)
	content := string(source)
	for _, name := range documentedCommands {
		if !strings.Contains(content, "tb "+name) && !strings.Contains(content, "`"+name+"`") {
			t.Errorf("README.md does not mention the %s command", name)
		}
	}
}

func TestReadmeHeadings(t *testing.T) {
	source, doc := parseReadme(t)

	var headings []string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			var sb strings.Builder
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					sb.Write(txt.Segment.Value(source))
				}
			}
			headings = append(headings, sb.String())
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking README.md: %v", err)
	}

	if len(headings) == 0 || headings[0] != "traderbook" {
		t.Errorf("first heading = %v, want the project name", headings)
	}
	for _, want := range []string{"Install", "Quick start", "Commands"} {
		found := false
		for _, h := range headings {
			if h == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("README.md is missing the %q section", want)
		}
	}
}
