package source

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/folio/model"
)

// fontSpec is one entry of the producer's font table. Identifiers are
// document-global, so specs accumulate across pages.
type fontSpec struct {
	size   float64
	family string
}

// ReadFile parses a pdftohtml -xml file into positioned page fragments.
func ReadFile(path string) ([]model.PageFragments, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses pdftohtml -xml output from r. Pages are returned in
// ascending page-number order; whitespace-only fragments are dropped.
func Read(r io.Reader) ([]model.PageFragments, error) {
	p := &parser{
		tokenizer: html.NewTokenizer(r),
		fonts:     make(map[string]fontSpec),
	}
	if err := p.run(); err != nil {
		return nil, err
	}

	if len(p.pages) == 0 {
		return nil, fmt.Errorf("no page elements found: input is not pdftohtml -xml output")
	}

	sort.SliceStable(p.pages, func(i, j int) bool {
		return p.pages[i].PageNumber < p.pages[j].PageNumber
	})
	return p.pages, nil
}

// parser walks the token stream. The pdf2xml vocabulary is flat enough
// that two pieces of state suffice: the page being filled and the text
// fragment being accumulated.
type parser struct {
	tokenizer *html.Tokenizer
	fonts     map[string]fontSpec
	pages     []model.PageFragments

	page    *model.PageFragments
	text    *strings.Builder
	pending model.Fragment
}

func (p *parser) run() error {
	for {
		switch p.tokenizer.Next() {
		case html.ErrorToken:
			err := p.tokenizer.Err()
			if err == io.EOF {
				p.flushPage()
				return nil
			}
			return fmt.Errorf("parsing document: %w", err)

		case html.StartTagToken, html.SelfClosingTagToken:
			if err := p.startElement(p.tokenizer.Token()); err != nil {
				return err
			}

		case html.TextToken:
			if p.text != nil {
				p.text.Write(p.tokenizer.Text())
			}

		case html.EndTagToken:
			name, _ := p.tokenizer.TagName()
			switch string(name) {
			case "text":
				p.finishFragment()
			case "page":
				p.flushPage()
			}
		}
	}
}

func (p *parser) startElement(tok html.Token) error {
	switch tok.Data {
	case "page":
		p.flushPage()
		number := int(attrFloat(tok, "number"))
		if number <= 0 {
			return fmt.Errorf("page element without a positive number attribute")
		}
		p.page = &model.PageFragments{
			PageNumber: number,
			PageWidth:  attrFloat(tok, "width"),
			PageHeight: attrFloat(tok, "height"),
		}

	case "fontspec":
		if id := attr(tok, "id"); id != "" {
			p.fonts[id] = fontSpec{
				size:   attrFloat(tok, "size"),
				family: attr(tok, "family"),
			}
		}

	case "text":
		if p.page == nil {
			return fmt.Errorf("text element outside any page")
		}
		top := attrFloat(tok, "top")
		left := attrFloat(tok, "left")
		spec := p.fonts[attr(tok, "font")]
		p.pending = model.Fragment{
			Page: p.page.PageNumber,
			BBox: model.BBox{
				X0: left,
				Y0: top,
				X1: left + attrFloat(tok, "width"),
				Y1: top + attrFloat(tok, "height"),
			},
			FontName: spec.family,
			FontSize: spec.size,
		}
		p.text = &strings.Builder{}

	case "b":
		if p.text != nil {
			p.pending.Bold = true
		}

	case "i":
		if p.text != nil {
			p.pending.Italic = true
		}
	}
	return nil
}

// finishFragment closes the accumulating text element. Fragments that
// normalize to whitespace carry no signal and are dropped.
func (p *parser) finishFragment() {
	if p.text == nil || p.page == nil {
		return
	}
	text := strings.TrimSpace(norm.NFC.String(p.text.String()))
	p.text = nil
	if text == "" {
		return
	}

	frag := p.pending
	frag.Text = text
	if family := strings.ToLower(frag.FontName); !frag.Bold && strings.Contains(family, "bold") {
		frag.Bold = true
	}
	if family := strings.ToLower(frag.FontName); !frag.Italic && strings.Contains(family, "italic") {
		frag.Italic = true
	}
	p.page.Fragments = append(p.page.Fragments, frag)
}

func (p *parser) flushPage() {
	p.finishFragment()
	if p.page != nil {
		p.pages = append(p.pages, *p.page)
		p.page = nil
	}
}

func attr(tok html.Token, key string) string {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func attrFloat(tok html.Token, key string) float64 {
	v, err := strconv.ParseFloat(attr(tok, key), 64)
	if err != nil {
		return 0
	}
	return v
}
