package db

import (
	"testing"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestInsertDocument(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	id1, err := db.InsertDocument("/cases/45_State_appeal.pdf", "abc123")
	if err != nil {
		t.Fatalf("InsertDocument() error = %v", err)
	}
	if id1 == 0 {
		t.Fatal("InsertDocument() returned zero ID")
	}

	// Same path returns the same ID and refreshes the hash
	id2, err := db.InsertDocument("/cases/45_State_appeal.pdf", "def456")
	if err != nil {
		t.Fatalf("InsertDocument() second call error = %v", err)
	}
	if id2 != id1 {
		t.Errorf("InsertDocument() duplicate path returned %d, want %d", id2, id1)
	}

	doc, err := db.GetDocumentByID(id1)
	if err != nil {
		t.Fatalf("GetDocumentByID() error = %v", err)
	}
	if doc == nil {
		t.Fatal("GetDocumentByID() returned nil for existing document")
	}
	if doc.Filename != "45_State_appeal.pdf" {
		t.Errorf("Filename = %q", doc.Filename)
	}
	if doc.ContentHash.String != "def456" {
		t.Errorf("ContentHash = %q, want refreshed hash", doc.ContentHash.String)
	}

	// Different path gets a new ID
	id3, err := db.InsertDocument("/cases/46_Karim_appeal.pdf", "xyz")
	if err != nil {
		t.Fatalf("InsertDocument() error = %v", err)
	}
	if id3 == id1 {
		t.Error("distinct paths share a doc_id")
	}
}

func TestGetDocumentByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	doc, err := db.GetDocumentByID(999)
	if err != nil {
		t.Fatalf("GetDocumentByID() error = %v", err)
	}
	if doc != nil {
		t.Errorf("GetDocumentByID(999) = %+v, want nil", doc)
	}
}

func TestUpdateDocumentProfile(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	docID, err := db.InsertDocument("/cases/a.pdf", "h")
	if err != nil {
		t.Fatalf("InsertDocument() error = %v", err)
	}

	profile := DocumentProfile{
		CaseNumber:         NewNullString("Criminal Appeal No. 45 of 2020"),
		CaseType:           NewNullString("Criminal Appeal"),
		District:           NewNullString("Dhaka"),
		HasBengali:         true,
		OriginalEncoding:   "mixed",
		ConvertedToUnicode: true,
		Language:           NewNullString("bn"),
		PageCount:          12,
		WordCount:          4200,
		CharCount:          26000,
		UnicodeChars:       9000,
		BijoyIndicators:    140,
	}
	if err := db.UpdateDocumentProfile(docID, profile); err != nil {
		t.Fatalf("UpdateDocumentProfile() error = %v", err)
	}

	doc, err := db.GetDocumentByID(docID)
	if err != nil {
		t.Fatalf("GetDocumentByID() error = %v", err)
	}
	if doc.CaseNumber.String != "Criminal Appeal No. 45 of 2020" {
		t.Errorf("CaseNumber = %q", doc.CaseNumber.String)
	}
	if !doc.HasBengali || !doc.ConvertedToUnicode {
		t.Errorf("bengali flags not persisted: %+v", doc)
	}
	if doc.OriginalEncoding.String != "mixed" {
		t.Errorf("OriginalEncoding = %q", doc.OriginalEncoding.String)
	}
	if doc.WordCount != 4200 || doc.PageCount != 12 {
		t.Errorf("counts not persisted: words=%d pages=%d", doc.WordCount, doc.PageCount)
	}
}

func TestGetDocumentsByEncoding(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for i, enc := range []string{"bijoy", "unicode", "bijoy"} {
		docID, err := db.InsertDocument(string(rune('a'+i))+".pdf", "h")
		if err != nil {
			t.Fatalf("InsertDocument() error = %v", err)
		}
		if err := db.UpdateDocumentProfile(docID, DocumentProfile{OriginalEncoding: enc}); err != nil {
			t.Fatalf("UpdateDocumentProfile() error = %v", err)
		}
	}

	docs, err := db.GetDocumentsByEncoding("bijoy")
	if err != nil {
		t.Fatalf("GetDocumentsByEncoding() error = %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("GetDocumentsByEncoding(bijoy) returned %d docs, want 2", len(docs))
	}
}

func TestRecordAndGetLastAccess(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	docID, err := db.InsertDocument("/cases/a.pdf", "h")
	if err != nil {
		t.Fatalf("InsertDocument() error = %v", err)
	}

	last, err := db.GetLastAccess(docID)
	if err != nil {
		t.Fatalf("GetLastAccess() error = %v", err)
	}
	if last != nil {
		t.Errorf("GetLastAccess() before any access = %+v, want nil", last)
	}

	if err := db.RecordAccess(docID, "reader", "", true); err != nil {
		t.Fatalf("RecordAccess() error = %v", err)
	}
	if err := db.RecordAccess(docID, "stream", "no_text", false); err != nil {
		t.Fatalf("RecordAccess() error = %v", err)
	}

	last, err = db.GetLastAccess(docID)
	if err != nil {
		t.Fatalf("GetLastAccess() error = %v", err)
	}
	if last == nil {
		t.Fatal("GetLastAccess() returned nil after accesses")
	}
	if last.Success {
		t.Error("GetLastAccess() returned the earlier successful access")
	}
	if last.Method.String != "stream" {
		t.Errorf("Method = %q, want stream", last.Method.String)
	}
}

func TestDocumentMetadataRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	docID, err := db.InsertDocument("/cases/a.pdf", "h")
	if err != nil {
		t.Fatalf("InsertDocument() error = %v", err)
	}

	if err := db.SetDocumentMetadata(docID, "judges", "0", "Abdul Karim"); err != nil {
		t.Fatalf("SetDocumentMetadata() error = %v", err)
	}
	if err := db.SetDocumentMetadata(docID, "judges", "1", "Rahim Uddin"); err != nil {
		t.Fatalf("SetDocumentMetadata() error = %v", err)
	}
	// Upsert overwrites
	if err := db.SetDocumentMetadata(docID, "judges", "1", "S. Ahmed"); err != nil {
		t.Fatalf("SetDocumentMetadata() upsert error = %v", err)
	}

	kv, err := db.GetDocumentMetadata(docID, "judges")
	if err != nil {
		t.Fatalf("GetDocumentMetadata() error = %v", err)
	}
	if len(kv) != 2 {
		t.Fatalf("GetDocumentMetadata() returned %d entries, want 2", len(kv))
	}
	if kv["1"] != "S. Ahmed" {
		t.Errorf("judges/1 = %q, want upserted value", kv["1"])
	}

	other, err := db.GetDocumentMetadata(docID, "parties")
	if err != nil {
		t.Fatalf("GetDocumentMetadata() error = %v", err)
	}
	if len(other) != 0 {
		t.Errorf("empty namespace returned %v", other)
	}
}
