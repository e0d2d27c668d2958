package domain

import "testing"

func TestDefaultLayoutIsValid(t *testing.T) {
	if !DefaultLayout().Valid() {
		t.Fatal("default layout must validate")
	}
}

func TestLayoutValid(t *testing.T) {
	full := func() Layout {
		return Layout{
			"header":    {Element: ElementName, Position: PositionTopCenter, Size: SizeLarge},
			"photo":     {Element: ElementPhoto, Position: PositionCenter, Size: SizeMedium},
			"message":   {Element: ElementMessage, Position: PositionCenter, Size: SizeMedium},
			"countdown": {Element: ElementCountdown, Position: PositionBottomCenter, Size: SizeSmall},
		}
	}

	tests := []struct {
		name   string
		mutate func(l Layout)
		want   bool
	}{
		{"complete layout", func(l Layout) {}, true},
		{"unknown element", func(l Layout) {
			l["header"] = LayoutSlot{Element: "banner", Position: PositionTopCenter, Size: SizeLarge}
		}, false},
		{"unknown position", func(l Layout) {
			l["photo"] = LayoutSlot{Element: ElementPhoto, Position: "middle", Size: SizeMedium}
		}, false},
		{"unknown size", func(l Layout) {
			l["message"] = LayoutSlot{Element: ElementMessage, Position: PositionCenter, Size: "huge"}
		}, false},
		{"duplicate element", func(l Layout) {
			l["extra"] = LayoutSlot{Element: ElementName, Position: PositionBottomLeft, Size: SizeSmall}
		}, false},
		{"missing element", func(l Layout) {
			delete(l, "countdown")
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := full()
			tt.mutate(l)
			if got := l.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLayoutEmptyInvalid(t *testing.T) {
	if (Layout{}).Valid() {
		t.Error("empty layout must not validate")
	}
	var nilLayout Layout
	if nilLayout.Valid() {
		t.Error("nil layout must not validate")
	}
}
