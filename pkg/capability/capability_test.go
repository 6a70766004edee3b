package capability

import "testing"

func TestPartFromToken(t *testing.T) {
	tests := []struct {
		token string
		want  Part
	}{
		{token: "colorSelector", want: PartSeries},
		{token: "enableAxis", want: PartAxis},
		{token: "directEdit", want: PartOverlayText},
		{token: "", want: PartUnknown},
		{token: "ColorSelector", want: PartUnknown},
		{token: "legend", want: PartUnknown},
	}

	for _, tt := range tests {
		if got := PartFromToken(tt.token); got != tt.want {
			t.Errorf("PartFromToken(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	for _, p := range []Part{PartSeries, PartAxis, PartOverlayText} {
		if got := PartFromToken(p.Token()); got != p {
			t.Errorf("PartFromToken(%v.Token()) = %v, want %v", p, got, p)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		part        Part
		wantStyles  []StyleCapability
		wantActions []QuickAction
	}{
		{
			name:        "series offers fill color",
			part:        PartSeries,
			wantStyles:  []StyleCapability{StyleFillColor},
			wantActions: []QuickAction{ActionPickColor},
		},
		{
			name:        "axis offers visibility",
			part:        PartAxis,
			wantStyles:  []StyleCapability{StyleAxisVisibility},
			wantActions: []QuickAction{ActionToggleAxis},
		},
		{
			name:        "overlay text offers direct edit",
			part:        PartOverlayText,
			wantStyles:  []StyleCapability{StyleTextContent},
			wantActions: []QuickAction{ActionEditText},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.part)
			if len(got.Styles) != len(tt.wantStyles) {
				t.Fatalf("Resolve(%v) styles = %v, want %v", tt.part, got.Styles, tt.wantStyles)
			}
			for i, s := range tt.wantStyles {
				if got.Styles[i] != s {
					t.Errorf("Resolve(%v) style[%d] = %q, want %q", tt.part, i, got.Styles[i], s)
				}
			}
			if len(got.Actions) != len(tt.wantActions) {
				t.Fatalf("Resolve(%v) actions = %v, want %v", tt.part, got.Actions, tt.wantActions)
			}
			for i, a := range tt.wantActions {
				if got.Actions[i] != a {
					t.Errorf("Resolve(%v) action[%d] = %q, want %q", tt.part, i, got.Actions[i], a)
				}
			}
		})
	}
}

func TestResolveUnknownYieldsZero(t *testing.T) {
	got := Resolve(PartUnknown)
	if !got.Empty() {
		t.Errorf("Resolve(PartUnknown) = %+v, want empty capabilities", got)
	}

	got = ResolveToken("somethingElse")
	if !got.Empty() {
		t.Errorf("ResolveToken(unknown) = %+v, want empty capabilities", got)
	}
	if len(got.Styles) != 0 || len(got.Actions) != 0 {
		t.Errorf("unknown token capabilities not zero: %+v", got)
	}
}

func TestPartString(t *testing.T) {
	tests := []struct {
		part Part
		want string
	}{
		{part: PartSeries, want: "series"},
		{part: PartAxis, want: "axis"},
		{part: PartOverlayText, want: "overlay-text"},
		{part: PartUnknown, want: "unknown"},
		{part: Part(99), want: "unknown"},
	}

	for _, tt := range tests {
		if got := tt.part.String(); got != tt.want {
			t.Errorf("Part(%d).String() = %q, want %q", tt.part, got, tt.want)
		}
	}
}
