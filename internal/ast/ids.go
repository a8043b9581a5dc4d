package ast

type (
	TopLevelID uint32
	ItemID     uint32
	StmtID     uint32
	ExprID     uint32
	PayloadID  uint32
)

const (
	NoTopLevelID TopLevelID = 0
	NoItemID     ItemID     = 0
	NoStmtID     StmtID     = 0
	NoExprID     ExprID     = 0
	NoPayloadID  PayloadID  = 0
)

func (id TopLevelID) IsValid() bool { return id != NoTopLevelID }
func (id ItemID) IsValid() bool     { return id != NoItemID }
func (id StmtID) IsValid() bool     { return id != NoStmtID }
func (id ExprID) IsValid() bool     { return id != NoExprID }
func (id PayloadID) IsValid() bool  { return id != NoPayloadID }
