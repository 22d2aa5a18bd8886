package types

type ConfigKind string

const (
	ConfigKindNotebook ConfigKind = "notebook"
)

type Section string

const (
	SectionFrontmatter Section = "frontmatter"
	SectionBody        Section = "body"
	SectionAppendix    Section = "appendix"
)

func Sections() []Section {
	return []Section{SectionFrontmatter, SectionBody, SectionAppendix}
}

type SelectStrategy string

const (
	SelectFirst  SelectStrategy = "first"
	SelectLatest SelectStrategy = "latest"
)
