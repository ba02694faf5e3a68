package app

// Message catalog keys. The console resolves them through the i18n package;
// each key has an English and a Korean translation.
const (
	KeyNameRequired       = "msg.page.alert.insert.chart.name"
	KeyDeleteHeader       = "msg.metadata.md.ui.delete.header"
	KeyDeleted            = "msg.metadata.md.alert.deleted"
	KeyDeleteFailed       = "msg.metadata.md.alert.delete.fail"
	KeyFetchFailed        = "msg.metadata.md.alert.detail.fail"
	KeyUpdateFailed       = "msg.metadata.md.alert.update.fail"
	KeyUpdated            = "msg.metadata.md.alert.updated"
	KeyNameTooLong        = "msg.metadata.md.alert.name.too.long"
	KeyDescriptionTooLong = "msg.metadata.md.alert.desc.too.long"
	KeyCopied             = "msg.metadata.md.alert.copied"
	KeyCopyFailed         = "msg.metadata.md.alert.copy.fail"
	KeyListFailed         = "msg.metadata.md.alert.list.fail"
	KeyOffline            = "msg.metadata.md.ui.offline"
	KeyLoading            = "msg.comm.ui.loading"
	KeyNoDescription      = "msg.metadata.md.ui.no.description"
	KeyNoFields           = "msg.metadata.md.ui.no.fields"
	KeyNoRecords          = "msg.metadata.md.ui.no.records"

	KeyErrNotFound      = "msg.metadata.md.err.not.found"
	KeyErrDuplicateName = "msg.metadata.md.err.duplicate.name"
	KeyErrAccessDenied  = "msg.metadata.md.err.access.denied"
	KeyErrUnavailable   = "msg.metadata.md.err.unavailable"
	KeyErrRejected      = "msg.metadata.md.err.rejected"

	KeyTabInformation = "msg.metadata.md.ui.tab.information"
	KeyTabFields      = "msg.metadata.md.ui.tab.fields"

	KeyListTitle   = "msg.metadata.md.ui.list.title"
	KeyDetailTitle = "msg.metadata.md.ui.detail.title"
	KeyLabelID     = "msg.metadata.md.th.id"
	KeyLabelName   = "msg.metadata.md.th.name"
	KeyLabelDesc   = "msg.metadata.md.th.description"
	KeyPageInfo    = "msg.metadata.md.ui.page"

	KeyMenuRename = "msg.metadata.md.ui.menu.rename"
	KeyMenuDesc   = "msg.metadata.md.ui.menu.description"
	KeyMenuCopyID = "msg.metadata.md.ui.menu.copy.id"
	KeyMenuDelete = "msg.metadata.md.ui.menu.delete"

	KeyConfirmYes = "msg.comm.btn.del"
	KeyConfirmNo  = "msg.comm.btn.cancl"
)
