package services

import (
	"testing"
)

func TestProjectListRequest_Defaults(t *testing.T) {
	req := &ProjectListRequest{}

	if req.Page != 0 {
		t.Errorf("default Page should be 0, got %d", req.Page)
	}
	if req.PageSize != 0 {
		t.Errorf("default PageSize should be 0, got %d", req.PageSize)
	}
}

func TestProjectListRequest_WithFilters(t *testing.T) {
	req := &ProjectListRequest{
		Page:     2,
		PageSize: 25,
		Name:     "Atlas",
	}

	if req.Page != 2 {
		t.Errorf("Page = %d, expected 2", req.Page)
	}
	if req.PageSize != 25 {
		t.Errorf("PageSize = %d, expected 25", req.PageSize)
	}
	if req.Name != "Atlas" {
		t.Errorf("Name = %q, expected %q", req.Name, "Atlas")
	}
}

func TestProjectListResponse_Structure(t *testing.T) {
	resp := &ProjectListResponse{
		Total:    50,
		Page:     1,
		PageSize: 10,
		Items:    nil,
	}

	if resp.Total != 50 {
		t.Errorf("Total = %d, expected 50", resp.Total)
	}
	if resp.Page != 1 {
		t.Errorf("Page = %d, expected 1", resp.Page)
	}
	if resp.PageSize != 10 {
		t.Errorf("PageSize = %d, expected 10", resp.PageSize)
	}
	if resp.Items != nil {
		t.Error("Items should be nil")
	}
}
