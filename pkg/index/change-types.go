package index

type SourceChangeHandler interface {
	SourceChanged(source *Source)
}
