package backend

import (
	"github.com/arthur-debert/docrender/pkg/actions"
	"github.com/arthur-debert/docrender/pkg/document"
)

func block(class string) *actions.Delimiter {
	return &actions.Delimiter{
		Start:     "\n<div class=\"" + class + "\">\n",
		End:       "\n</div>\n",
		Arguments: []actions.Wrap{{}},
	}
}

func listing(tag string) *actions.Delimiter {
	return &actions.Delimiter{
		Start:     "\n<" + tag + ">\n",
		End:       "</" + tag + ">\n",
		Arguments: []actions.Wrap{{Before: "  <li>", After: "</li>\n"}},
	}
}

func entity(suffix string) *actions.Replace {
	return actions.NewReplace(`([A-Za-z])`, "&${1}"+suffix+";")
}

// htmlLayer is the HTML table. It does not build on the ASCII one:
// almost every entry differs.
func htmlLayer(linkSuffix string) document.Layer {
	first := actions.NewIdentity(1)

	entries := map[string]document.Action{
		"bold":       actions.NewElement("strong"),
		"emph":       actions.NewElement("em"),
		"italic":     actions.NewElement("i"),
		"underline":  actions.NewElement("u"),
		"uppercase":  actions.NewElement("span", "uppercase"),
		"sansserif":  actions.NewElement("span", "font-sansserif"),
		"serif":      actions.NewElement("span", "font-serif"),
		"typewriter": actions.NewElement("span", "font-typewriter"),

		"left":   block("align-left"),
		"right":  block("align-right"),
		"center": block("align-center"),
		"block":  block("align-justify"),

		"title":     actions.NewPattern("\n<h1[[ class=\"%1\"]]>$1</h1>[[<div class=\"subtitletext\">(%2)</div>]]\n"),
		"subtitle":  actions.NewPattern("\n<h2[[ class=\"%1\"]]>$1</h2>\n"),
		"textblock": actions.NewPattern("<div class=\"textblock[[ %1]]\">$1</div>"),

		"par":         actions.NewDelimiter("\n<p />\n", ""),
		"linebreak":   actions.NewDelimiter("<br />\n", ""),
		"hrule":       actions.NewPattern("\n<hr[[ width=\"%1%\"]]>\n"),
		"list":        listing("ul"),
		"enumeration": listing("ol"),
		"table":       actions.HTMLTable{},
		"footnote":    actions.Footnote{},
		"super":       actions.NewPattern("<sup>$1</sup>"),
		"sub":         actions.NewPattern("<sub>$1</sub>"),
		"frac":        actions.NewPattern("[[%1 ]]<sup>$1</sup>&frasl;<sub>$2</sub>"),

		"hat":    entity("circ"),
		"umlaut": entity("uml"),
		"acute":  entity("acute"),
		"grave":  entity("grave"),

		"link":       &actions.Link{Suffix: linkSuffix},
		"image":      actions.NewPattern("<img src=\"$1\"[[ alt=\"%1\"]] />"),
		"nopictures": first,
		"window":     first,
		"grouped":    first,
		"id":         actions.NewPattern("<span id=\"$1\">$2</span>"),
		"divider":    actions.NewPattern("<div [[id=\"%1\" ]]class=\"$1\">$2</div>"),
		"span":       actions.NewPattern("<span class=\"$1\">$2</span>"),
		"color":      actions.NewPattern("<span class=\"$1\">$2</span>"),
		"editable":   actions.NewIdentity(3),

		"count":        actions.NewPattern("$1 (max $2) $3"),
		"less":         actions.NewDelimiter("&lt;", ""),
		"greater":      actions.NewDelimiter("&gt;", ""),
		"lessequal":    actions.NewDelimiter("&le;", ""),
		"greaterequal": actions.NewDelimiter("&ge;", ""),

		"value": actions.NewPattern("<div class=\"value[[ %1]]\">$1$2</div>"),

		"newpage": actions.Drop{},
		"toc":     actions.Drop{},
	}
	for _, size := range sizes {
		entries[size] = actions.NewElement("span", "size-"+size)
	}
	return document.Layer{Name: string(HTML), Entries: entries}
}
