package lookup

import "testing"

func TestNormalizeZipMarkets_ParentsAndChildren(t *testing.T) {
	rows := [][]string{
		{"110", "60601"},
		{"110", "60602"},
		{"220", "94105"},
	}

	res := NormalizeZipMarkets(rows)

	if res.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", res.Skipped)
	}
	// 2 distinct markets + 3 zips
	if len(res.Records) != 5 {
		t.Fatalf("len(Records) = %d, want 5", len(res.Records))
	}

	// Parents come first, sorted by key
	parents := res.Records[:2]
	for i, want := range []string{"110", "220"} {
		p := parents[i]
		if p.Namespace != NamespaceMarketAreas {
			t.Errorf("parent[%d].Namespace = %q, want %q", i, p.Namespace, NamespaceMarketAreas)
		}
		if p.Key != want {
			t.Errorf("parent[%d].Key = %q, want %q", i, p.Key, want)
		}
		if p.ParentKey != "" {
			t.Errorf("parent[%d].ParentKey = %q, want empty", i, p.ParentKey)
		}
		if p.Value.Text != "Market "+want {
			t.Errorf("parent[%d].Value.Text = %q, want %q", i, p.Value.Text, "Market "+want)
		}
	}

	// Every child's parent key must match a parent record
	parentKeys := map[string]bool{}
	for _, p := range parents {
		parentKeys[p.Key] = true
	}
	for _, c := range res.Records[2:] {
		if c.Namespace != NamespaceZipCodes {
			t.Errorf("child Namespace = %q, want %q", c.Namespace, NamespaceZipCodes)
		}
		if !parentKeys[c.ParentKey] {
			t.Errorf("child %q has parent key %q with no parent record", c.Key, c.ParentKey)
		}
		if c.Metadata["market_code"] != c.ParentKey {
			t.Errorf("child %q metadata market_code = %v, want %q", c.Key, c.Metadata["market_code"], c.ParentKey)
		}
	}
}

func TestNormalizeZipMarkets_ChildOrderPreserved(t *testing.T) {
	rows := [][]string{
		{"9", "30301"},
		{"1", "10001"},
	}

	res := NormalizeZipMarkets(rows)

	// Parents sorted, children in source order after them
	wantKeys := []string{"1", "9", "30301", "10001"}
	if len(res.Records) != len(wantKeys) {
		t.Fatalf("len(Records) = %d, want %d", len(res.Records), len(wantKeys))
	}
	for i, want := range wantKeys {
		if res.Records[i].Key != want {
			t.Errorf("Records[%d].Key = %q, want %q", i, res.Records[i].Key, want)
		}
	}
}

func TestNormalizeZipMarkets_ShortRowsSkipped(t *testing.T) {
	rows := [][]string{
		{"110", "60601"},
		{"only-one-field"},
		{},
	}

	res := NormalizeZipMarkets(rows)

	if res.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", res.Skipped)
	}
	// 1 market + 1 zip
	if len(res.Records) != 2 {
		t.Errorf("len(Records) = %d, want 2", len(res.Records))
	}
}

func TestNormalizeZipMarkets_TrimsWhitespace(t *testing.T) {
	res := NormalizeZipMarkets([][]string{{" 110 ", " 60601 "}})

	if len(res.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(res.Records))
	}
	if res.Records[0].Key != "110" {
		t.Errorf("parent Key = %q, want %q", res.Records[0].Key, "110")
	}
	if res.Records[1].Key != "60601" {
		t.Errorf("child Key = %q, want %q", res.Records[1].Key, "60601")
	}
}

func TestNormalizeZipMarkets_Empty(t *testing.T) {
	res := NormalizeZipMarkets(nil)

	if len(res.Records) != 0 {
		t.Errorf("len(Records) = %d, want 0", len(res.Records))
	}
	if res.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", res.Skipped)
	}
}
