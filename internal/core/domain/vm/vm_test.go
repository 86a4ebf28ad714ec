package vm

import "testing"

func TestParseProvider(t *testing.T) {
	tests := []struct {
		input   string
		want    Provider
		wantErr bool
	}{
		{input: "multipass", want: Multipass},
		{input: "Multipass", want: Multipass},
		{input: " virtualbox ", want: VirtualBox},
		{input: "vbox", want: VirtualBox},
		{input: "hyperv", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseProvider(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseProvider(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseProvider(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestProvider_String(t *testing.T) {
	if got := Multipass.String(); got != "multipass" {
		t.Errorf("Multipass.String() = %q", got)
	}
	if got := VirtualBox.String(); got != "virtualbox" {
		t.Errorf("VirtualBox.String() = %q", got)
	}
	if got := Provider(42).String(); got != "provider(42)" {
		t.Errorf("Provider(42).String() = %q", got)
	}
}
