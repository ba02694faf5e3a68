package i18n

import (
	"github.com/MKhiriev/go-metadata-console/internal/app"
	"golang.org/x/text/language"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		app.KeyNameRequired:       "Please enter a name.",
		app.KeyDeleteHeader:       "Delete metadata",
		app.KeyDeleted:            "'%s' is deleted.",
		app.KeyDeleteFailed:       "Failed to delete metadata",
		app.KeyFetchFailed:        "Failed to load metadata",
		app.KeyUpdateFailed:       "Failed to update metadata",
		app.KeyUpdated:            "Saved.",
		app.KeyNameTooLong:        "The name must be at most %d characters.",
		app.KeyDescriptionTooLong: "The description must be at most %d characters.",
		app.KeyCopied:             "Copied %s to the clipboard.",
		app.KeyCopyFailed:         "Failed to copy to the clipboard",
		app.KeyListFailed:         "Failed to load the metadata list",
		app.KeyOffline:            "offline: showing recently viewed records",
		app.KeyLoading:            "Loading…",
		app.KeyNoDescription:      "No description",
		app.KeyNoFields:           "No additional fields",
		app.KeyNoRecords:          "No metadata found",
		app.KeyErrNotFound:        "the metadata no longer exists",
		app.KeyErrDuplicateName:   "another metadata already uses this name",
		app.KeyErrAccessDenied:    "you may not change this metadata",
		app.KeyErrUnavailable:     "the catalog is unavailable",
		app.KeyErrRejected:        "the catalog rejected the change",
		app.KeyTabInformation:     "Information",
		app.KeyTabFields:          "Fields",
		app.KeyListTitle:          "Metadata",
		app.KeyDetailTitle:        "Metadata detail",
		app.KeyLabelID:            "ID",
		app.KeyLabelName:          "Name",
		app.KeyLabelDesc:          "Description",
		app.KeyPageInfo:           "page %d / %d (%d records)",
		app.KeyMenuRename:         "Rename",
		app.KeyMenuDesc:           "Edit description",
		app.KeyMenuCopyID:         "Copy ID",
		app.KeyMenuDelete:         "Delete",
		app.KeyConfirmYes:         "y delete",
		app.KeyConfirmNo:          "n cancel",
	},
	language.Korean: {
		app.KeyNameRequired:       "이름을 입력해 주세요.",
		app.KeyDeleteHeader:       "메타데이터 삭제",
		app.KeyDeleted:            "'%s'이(가) 삭제되었습니다.",
		app.KeyDeleteFailed:       "메타데이터 삭제에 실패했습니다",
		app.KeyFetchFailed:        "메타데이터를 불러오지 못했습니다",
		app.KeyUpdateFailed:       "메타데이터 수정에 실패했습니다",
		app.KeyUpdated:            "저장되었습니다.",
		app.KeyNameTooLong:        "이름은 최대 %d자까지 입력할 수 있습니다.",
		app.KeyDescriptionTooLong: "설명은 최대 %d자까지 입력할 수 있습니다.",
		app.KeyCopied:             "%s을(를) 클립보드에 복사했습니다.",
		app.KeyCopyFailed:         "클립보드 복사에 실패했습니다",
		app.KeyListFailed:         "메타데이터 목록을 불러오지 못했습니다",
		app.KeyOffline:            "오프라인: 최근 조회한 항목을 표시합니다",
		app.KeyLoading:            "불러오는 중…",
		app.KeyNoDescription:      "설명 없음",
		app.KeyNoFields:           "추가 필드 없음",
		app.KeyNoRecords:          "메타데이터가 없습니다",
		app.KeyErrNotFound:        "메타데이터가 존재하지 않습니다",
		app.KeyErrDuplicateName:   "같은 이름의 메타데이터가 이미 있습니다",
		app.KeyErrAccessDenied:    "이 메타데이터를 변경할 권한이 없습니다",
		app.KeyErrUnavailable:     "카탈로그에 연결할 수 없습니다",
		app.KeyErrRejected:        "카탈로그가 변경을 거부했습니다",
		app.KeyTabInformation:     "정보",
		app.KeyTabFields:          "필드",
		app.KeyListTitle:          "메타데이터",
		app.KeyDetailTitle:        "메타데이터 상세",
		app.KeyLabelID:            "ID",
		app.KeyLabelName:          "이름",
		app.KeyLabelDesc:          "설명",
		app.KeyPageInfo:           "%d / %d 페이지 (%d건)",
		app.KeyMenuRename:         "이름 변경",
		app.KeyMenuDesc:           "설명 편집",
		app.KeyMenuCopyID:         "ID 복사",
		app.KeyMenuDelete:         "삭제",
		app.KeyConfirmYes:         "y 삭제",
		app.KeyConfirmNo:          "n 취소",
	},
}
