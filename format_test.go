package hypermedia

import "testing"

func TestIsValidFormat(t *testing.T) {
	for _, f := range []Format{FormatHAL, FormatHALForms, FormatCollectionJSON} {
		if !IsValidFormat(f) {
			t.Errorf("IsValidFormat(%q) = false, want true", f)
		}
	}
	if IsValidFormat("siren") {
		t.Error(`IsValidFormat("siren") = true, want false`)
	}
}

func TestFormats(t *testing.T) {
	set := Formats(FormatHAL, FormatCollectionJSON)

	if !set.Has(FormatHAL) {
		t.Error("set should contain HAL")
	}
	if !set.Has(FormatCollectionJSON) {
		t.Error("set should contain Collection+JSON")
	}
	if set.Has(FormatHALForms) {
		t.Error("set should not contain HAL-FORMS")
	}
	if len(set) != 2 {
		t.Errorf("set has %d members, want 2", len(set))
	}
}

func TestProfiles_FixedOrder(t *testing.T) {
	want := []Format{FormatHAL, FormatHALForms, FormatCollectionJSON}
	if len(profiles) != len(want) {
		t.Fatalf("profiles has %d entries, want %d", len(profiles), len(want))
	}
	for i, f := range want {
		if profiles[i].id != f {
			t.Errorf("profiles[%d] = %q, want %q", i, profiles[i].id, f)
		}
	}
}

func TestProfile_Lookup(t *testing.T) {
	p, ok := Profile(FormatHALForms)
	if !ok {
		t.Fatal("Profile(FormatHALForms) not found")
	}
	if p.ID() != FormatHALForms {
		t.Errorf("ID() = %q, want %q", p.ID(), FormatHALForms)
	}

	if _, ok := Profile("siren"); ok {
		t.Error(`Profile("siren") should not be found`)
	}
}

func TestFormatProfile_MediaTypesCopy(t *testing.T) {
	p := mustProfile(t, FormatHAL)

	got := p.MediaTypes()
	got[0] = "text/plain"

	if p.MediaTypes()[0] != MediaTypeHALJSON {
		t.Error("MediaTypes() must return a copy")
	}
}
