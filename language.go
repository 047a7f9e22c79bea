package textsplit

import "fmt"

// Language identifies a supported programming or markup language in the
// separator registry. Adding a language means adding one ordered list below;
// no other code changes.
type Language string

const (
	LanguageCPP      Language = "cpp"
	LanguageGo       Language = "go"
	LanguageJava     Language = "java"
	LanguageJS       Language = "js"
	LanguagePHP      Language = "php"
	LanguageProto    Language = "proto"
	LanguagePython   Language = "python"
	LanguageRST      Language = "rst"
	LanguageRuby     Language = "ruby"
	LanguageRust     Language = "rust"
	LanguageScala    Language = "scala"
	LanguageSwift    Language = "swift"
	LanguageMarkdown Language = "markdown"
	LanguageLatex    Language = "latex"
	LanguageHTML     Language = "html"
	LanguageSolidity Language = "sol"
)

// languageSeparators maps each language to its separator list, ordered from
// structurally significant breaks down to generic whitespace and the
// per-character fallback. Entries are literal substrings.
var languageSeparators = map[Language][]string{
	LanguageCPP: {
		"\nclass ",
		"\nvoid ",
		"\nint ",
		"\nfloat ",
		"\ndouble ",
		"\nif ",
		"\nfor ",
		"\nwhile ",
		"\nswitch ",
		"\ncase ",
		"\n\n", "\n", " ", "",
	},
	LanguageGo: {
		"\nfunc ",
		"\nvar ",
		"\nconst ",
		"\ntype ",
		"\nif ",
		"\nfor ",
		"\nswitch ",
		"\ncase ",
		"\n\n", "\n", " ", "",
	},
	LanguageJava: {
		"\nclass ",
		"\npublic ",
		"\nprotected ",
		"\nprivate ",
		"\nstatic ",
		"\nif ",
		"\nfor ",
		"\nwhile ",
		"\nswitch ",
		"\ncase ",
		"\n\n", "\n", " ", "",
	},
	LanguageJS: {
		"\nfunction ",
		"\nconst ",
		"\nlet ",
		"\nvar ",
		"\nclass ",
		"\nif ",
		"\nfor ",
		"\nwhile ",
		"\nswitch ",
		"\ncase ",
		"\ndefault ",
		"\n\n", "\n", " ", "",
	},
	LanguagePHP: {
		"\nfunction ",
		"\nclass ",
		"\nif ",
		"\nforeach ",
		"\nwhile ",
		"\ndo ",
		"\nswitch ",
		"\ncase ",
		"\n\n", "\n", " ", "",
	},
	LanguageProto: {
		"\nmessage ",
		"\nservice ",
		"\nenum ",
		"\noption ",
		"\nimport ",
		"\nsyntax ",
		"\n\n", "\n", " ", "",
	},
	LanguagePython: {
		"\nclass ",
		"\ndef ",
		"\n\tdef ",
		"\n\n", "\n", " ", "",
	},
	LanguageRST: {
		"\n===\n",
		"\n---\n",
		"\n***\n",
		"\n.. ",
		"\n\n", "\n", " ", "",
	},
	LanguageRuby: {
		"\ndef ",
		"\nclass ",
		"\nif ",
		"\nunless ",
		"\nwhile ",
		"\nfor ",
		"\ndo ",
		"\nbegin ",
		"\nrescue ",
		"\n\n", "\n", " ", "",
	},
	LanguageRust: {
		"\nfn ",
		"\nconst ",
		"\nlet ",
		"\nif ",
		"\nwhile ",
		"\nfor ",
		"\nloop ",
		"\nmatch ",
		"\n\n", "\n", " ", "",
	},
	LanguageScala: {
		"\nclass ",
		"\nobject ",
		"\ndef ",
		"\nval ",
		"\nvar ",
		"\nif ",
		"\nfor ",
		"\nwhile ",
		"\nmatch ",
		"\ncase ",
		"\n\n", "\n", " ", "",
	},
	LanguageSwift: {
		"\nfunc ",
		"\nclass ",
		"\nstruct ",
		"\nenum ",
		"\nif ",
		"\nfor ",
		"\nwhile ",
		"\ndo ",
		"\nswitch ",
		"\ncase ",
		"\n\n", "\n", " ", "",
	},
	LanguageMarkdown: {
		"\n# ",
		"\n## ",
		"\n### ",
		"\n#### ",
		"\n##### ",
		"\n###### ",
		"```\n\n",
		"\n\n***\n\n",
		"\n\n---\n\n",
		"\n\n___\n\n",
		"\n\n", "\n", " ", "",
	},
	LanguageLatex: {
		"\n\\chapter{",
		"\n\\section{",
		"\n\\subsection{",
		"\n\\subsubsection{",
		"\n\\begin{enumerate}",
		"\n\\begin{itemize}",
		"\n\\begin{description}",
		"\n\\begin{list}",
		"\n\\begin{quote}",
		"\n\\begin{quotation}",
		"\n\\begin{verse}",
		"\n\\begin{verbatim}",
		"\n\\begin{align}",
		"$$",
		"$",
		" ", "",
	},
	LanguageHTML: {
		"<body>",
		"<div>",
		"<p>",
		"<br>",
		"<li>",
		"<h1>",
		"<h2>",
		"<h3>",
		"<h4>",
		"<h5>",
		"<h6>",
		"<span>",
		"<table>",
		"<tr>",
		"<td>",
		"<th>",
		"<ul>",
		"<ol>",
		"<header>",
		"<footer>",
		"<nav>",
		"<head>",
		"<style>",
		"<script>",
		"<meta>",
		"<title>",
		"",
	},
	LanguageSolidity: {
		"\npragma ",
		"\nusing ",
		"\ncontract ",
		"\ninterface ",
		"\nlibrary ",
		"\nconstructor ",
		"\ntype ",
		"\nfunction ",
		"\nevent ",
		"\nmodifier ",
		"\nerror ",
		"\nstruct ",
		"\nenum ",
		"\nif ",
		"\nfor ",
		"\nwhile ",
		"\ndo while ",
		"\nassembly ",
		"\n\n", "\n", " ", "",
	},
}

// SeparatorsForLanguage returns a copy of the registry entry for tag.
func SeparatorsForLanguage(tag Language) ([]string, error) {
	separators, ok := languageSeparators[tag]
	if !ok {
		return nil, fmt.Errorf("textsplit: unsupported language %q", tag)
	}
	out := make([]string, len(separators))
	copy(out, separators)
	return out, nil
}

// NewRecursiveFromLanguage builds a recursive splitter preloaded with the
// separator list registered for tag. Later options may still override it.
func NewRecursiveFromLanguage(tag Language, opts ...Option) (*Recursive, error) {
	separators, err := SeparatorsForLanguage(tag)
	if err != nil {
		return nil, err
	}
	combined := make([]Option, 0, len(opts)+1)
	combined = append(combined, WithSeparators(separators))
	combined = append(combined, opts...)
	return NewRecursive(combined...)
}
