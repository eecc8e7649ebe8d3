package discovery

import (
	"context"
	"reflect"
	"testing"

	"roadnet/internal/config"
)

func TestResolve_Static(t *testing.T) {
	cfg := config.DiscoveryConfig{Mode: "static", Peers: []string{"db1:5432", "db2:5432"}}
	got, err := Resolve(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := []string{"db1:5432", "db2:5432"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Resolve = %v, want %v", got, want)
	}
}

func TestResolve_UnsupportedMode(t *testing.T) {
	cfg := config.DiscoveryConfig{Mode: "carrier-pigeon"}
	if _, err := Resolve(context.Background(), cfg, nil); err == nil {
		t.Fatal("Resolve: expected an error for an unsupported mode")
	}
}

func TestResolve_DNSLookupFailureYieldsEmptyNotError(t *testing.T) {
	cfg := config.DiscoveryConfig{Mode: "dns", DNSName: "nonexistent.invalid", Service: "postgres"}
	got, err := Resolve(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("Resolve: %v, want no error (lookup failures degrade to empty)", err)
	}
	if len(got) != 0 {
		t.Fatalf("Resolve = %v, want none", got)
	}
}
