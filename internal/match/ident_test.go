package match

import (
	"testing"
)

func TestIdentifier_CasingClasses(t *testing.T) {
	suffixes := DefaultSuffixTable()
	tests := []struct {
		name  string
		ident string
		kind  IdentKind
		code  string // "" означает отсутствие находок
	}{
		{"snake variable", "player_speed", KindVariable, ""},
		{"private variable", "_cached_value", KindVariable, ""},
		{"snake with digits", "wave_2_timer", KindVariable, ""},
		{"camel variable", "playerSpeed", KindVariable, CodeIdentifierCasingMismatch},
		{"upper as variable", "MAX_PLAYERS", KindVariable, CodeIdentifierCasingMismatch},
		{"digit leading", "2fast", KindVariable, CodeIdentifierCasingMismatch},
		{"empty", "", KindVariable, CodeIdentifierCasingMismatch},

		{"snake function", "take_damage", KindFunction, ""},
		{"pascal function", "TakeDamage", KindFunction, CodeIdentifierCasingMismatch},

		{"snake signal", "health_changed", KindSignal, ""},
		{"camel signal", "healthChanged", KindSignal, CodeIdentifierCasingMismatch},

		{"upper constant", "MAX_PLAYERS", KindConstant, ""},
		{"snake constant", "max_players", KindConstant, CodeIdentifierCasingMismatch},

		{"pascal class", "PlayerBullet", KindClassName, ""},
		{"pascal class with digit", "Level2Boss", KindClassName, ""},
		{"snake class", "player_bullet", KindClassName, CodeIdentifierCasingMismatch},
		{"underscored pascal", "Player_Bullet", KindClassName, CodeIdentifierCasingMismatch},
		{"lower first", "playerBullet", KindClassName, CodeIdentifierCasingMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Identifier(tt.ident, tt.kind, suffixes)
			if tt.code == "" {
				if len(got) != 0 {
					t.Errorf("Identifier(%q, %s) = %+v, want clean", tt.ident, tt.kind, got)
				}
				return
			}
			if len(got) != 1 {
				t.Fatalf("Identifier(%q, %s) = %d findings, want 1", tt.ident, tt.kind, len(got))
			}
			if got[0].Code != tt.code {
				t.Errorf("code = %s, want %s", got[0].Code, tt.code)
			}
		})
	}
}

func TestIdentifier_NodeNames(t *testing.T) {
	suffixes := DefaultSuffixTable()
	tests := []struct {
		name  string
		ident string
		code  string
	}{
		{"button suffix", "StartBTN", ""},
		{"label suffix", "ScoreLBL", ""},
		{"timer suffix", "RespawnTMR", ""},
		{"two letter suffix", "MenuBG", ""},
		{"four letter suffix", "WalkANIM", ""},
		{"no suffix", "StartButton", CodeNodeNameUnknownSuffix},
		{"unknown suffix", "StartXYZ", CodeNodeNameUnknownSuffix},
		{"suffix only", "BTN", CodeNodeNameUnknownSuffix},
		{"not pascal", "start_btn", CodeIdentifierCasingMismatch},
		{"too long suffix run", "HudSCOREX", CodeNodeNameUnknownSuffix},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Identifier(tt.ident, KindNodeName, suffixes)
			if tt.code == "" {
				if len(got) != 0 {
					t.Errorf("Identifier(%q, node) = %+v, want clean", tt.ident, got)
				}
				return
			}
			if len(got) != 1 || got[0].Code != tt.code {
				t.Errorf("Identifier(%q, node) = %+v, want %s", tt.ident, got, tt.code)
			}
		})
	}
}

func TestIdentifier_CustomSuffixTable(t *testing.T) {
	table := SuffixTable{"HUD": "heads-up display"}
	if got := Identifier("MainHUD", KindNodeName, table); len(got) != 0 {
		t.Errorf("MainHUD rejected under custom table: %+v", got)
	}
	got := Identifier("StartBTN", KindNodeName, table)
	if len(got) != 1 || got[0].Code != CodeNodeNameUnknownSuffix {
		t.Errorf("BTN accepted under custom table: %+v", got)
	}
}

func TestSuffixTable_Validate(t *testing.T) {
	tests := []struct {
		name  string
		table SuffixTable
		ok    bool
	}{
		{"default table", DefaultSuffixTable(), true},
		{"too short", SuffixTable{"B": "button"}, false},
		{"too long", SuffixTable{"SPRITE": "sprite"}, false},
		{"lowercase", SuffixTable{"btn": "button"}, false},
		{"digits", SuffixTable{"BT1": "button"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && err == nil {
				t.Errorf("Validate() = nil, want error")
			}
		})
	}
}
