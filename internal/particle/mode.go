package particle

// Mode is the foreground configuration for one page.
type Mode struct {
	Count   int
	Variant Variant
}

var modes = map[string]Mode{
	"page1": {Count: 3, Variant: VariantFirework},
	"page2": {Count: 1, Variant: VariantFirework},
	"page3": {Count: 50, Variant: VariantDrifter},
	"page4": {},
	"page5": {Count: 6, Variant: VariantFirework},
	"page6": {},
}

// ModeFor looks up the foreground mode of pageID. Unknown pages get the empty
// mode.
func ModeFor(pageID string) Mode {
	return modes[pageID]
}
