package db

import (
	"testing"
)

func TestGetArtifactTypeID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	tests := []struct {
		typeName string
		wantErr  bool
	}{
		{typeName: "text_raw"},
		{typeName: "text_clean"},
		{typeName: "metadata_json"},
		{typeName: "metadata_yaml"},
		{typeName: "keywords"},
		{typeName: "nonexistent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			id, err := db.GetArtifactTypeID(tt.typeName)
			if tt.wantErr {
				if err == nil {
					t.Errorf("GetArtifactTypeID(%q) error = nil, want error", tt.typeName)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetArtifactTypeID(%q) error = %v", tt.typeName, err)
			}
			if id == 0 {
				t.Errorf("GetArtifactTypeID(%q) = 0", tt.typeName)
			}
		})
	}
}

func TestInsertArtifactUpsert(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	docID, err := db.InsertDocument("/cases/a.pdf", "h")
	if err != nil {
		t.Fatalf("InsertDocument() error = %v", err)
	}
	typeID, err := db.GetArtifactTypeID("text_raw")
	if err != nil {
		t.Fatalf("GetArtifactTypeID() error = %v", err)
	}

	id1, err := db.InsertArtifact(docID, typeID, "hash1", "case-results/1/raw.txt", 100)
	if err != nil {
		t.Fatalf("InsertArtifact() error = %v", err)
	}

	// Same doc and type updates in place
	id2, err := db.InsertArtifact(docID, typeID, "hash2", "case-results/1/raw.txt", 200)
	if err != nil {
		t.Fatalf("InsertArtifact() update error = %v", err)
	}
	if id2 != id1 {
		t.Errorf("InsertArtifact() upsert returned %d, want %d", id2, id1)
	}

	artifacts, err := db.ListArtifacts(docID)
	if err != nil {
		t.Fatalf("ListArtifacts() error = %v", err)
	}
	if len(artifacts) != 1 {
		t.Fatalf("ListArtifacts() returned %d artifacts, want 1", len(artifacts))
	}
	if artifacts[0].ContentHash != "hash2" || artifacts[0].SizeBytes != 200 {
		t.Errorf("artifact not updated: %+v", artifacts[0])
	}
}

func TestListArtifactsMultipleTypes(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	docID, err := db.InsertDocument("/cases/a.pdf", "h")
	if err != nil {
		t.Fatalf("InsertDocument() error = %v", err)
	}

	for _, typeName := range []string{"text_raw", "text_clean", "metadata_json"} {
		typeID, err := db.GetArtifactTypeID(typeName)
		if err != nil {
			t.Fatalf("GetArtifactTypeID(%q) error = %v", typeName, err)
		}
		if _, err := db.InsertArtifact(docID, typeID, "h", "case-results/1/"+typeName, 10); err != nil {
			t.Fatalf("InsertArtifact(%q) error = %v", typeName, err)
		}
	}

	artifacts, err := db.ListArtifacts(docID)
	if err != nil {
		t.Fatalf("ListArtifacts() error = %v", err)
	}
	if len(artifacts) != 3 {
		t.Errorf("ListArtifacts() returned %d artifacts, want 3", len(artifacts))
	}
}
