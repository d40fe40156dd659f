package document

import (
	"fmt"

	query "github.com/izayoijiichan/izayoi-data-query"
	"github.com/pkg/errors"
)

// Select is the select section of a document.
type Select struct {
	With      []CTE       `yaml:"with"`
	Recursive bool        `yaml:"recursive"`
	Distinct  bool        `yaml:"distinct"`
	All       bool        `yaml:"all"`
	From      *Table      `yaml:"from"`
	Joins     []Join      `yaml:"joins"`
	Fields    []Field     `yaml:"fields"`
	Where     []Condition `yaml:"where"`
	Group     []Group     `yaml:"group"`
	Having    []Condition `yaml:"having"`
	Order     []Order     `yaml:"order"`
	Limit     int         `yaml:"limit"`
	Offset    int         `yaml:"offset"`
	JSON      *JSON       `yaml:"json"`
}

// Model returns the statement model of the section.
func (s *Select) Model() (*query.Select, error) {
	if s.Distinct && s.All {
		return nil, errors.New("select is both distinct and all")
	}
	m := query.NewSelect().
		SetLimit(s.Limit).
		SetOffset(s.Offset)
	m.With = withModel(s.With, s.Recursive)
	switch {
	case s.Distinct:
		m.Distinct()
	case s.All:
		m.All()
	}
	if s.From != nil {
		m.SetFromTable(s.From.model())
	}
	if len(s.Joins) > 0 {
		if s.From == nil {
			return nil, errors.New("select joins without from")
		}
		if err := addJoins(m.From, s.Joins); err != nil {
			return nil, err
		}
	}
	for _, f := range s.Fields {
		if f.Expression {
			m.AddFieldExpression(f.Name, f.Alias)
			continue
		}
		m.AddField(f.Name, f.Alias)
	}
	wheres, err := conditionModels(s.Where)
	if err != nil {
		return nil, errors.Wrap(err, "where")
	}
	m.AddWhereCondition(wheres...)
	for _, g := range s.Group {
		if g.Expression {
			m.AddGroupExpression(g.Column)
			continue
		}
		m.AddGroup(g.Column)
	}
	havings, err := conditionModels(s.Having)
	if err != nil {
		return nil, errors.Wrap(err, "having")
	}
	m.AddHavingCondition(havings...)
	for _, o := range s.Order {
		dir, err := lookup(directions, o.Dir, "order direction")
		if err != nil {
			return nil, err
		}
		if o.Expression {
			m.AddOrderExpression(o.Column, dir)
			continue
		}
		m.AddOrder(o.Column, dir)
	}
	if s.JSON != nil {
		forJson, err := s.JSON.model()
		if err != nil {
			return nil, err
		}
		m.SetForJson(forJson)
	}
	return m, nil
}

// Insert is the insert section of a document.
type Insert struct {
	With      []CTE        `yaml:"with"`
	Recursive bool         `yaml:"recursive"`
	Into      Table        `yaml:"into"`
	Values    []Assignment `yaml:"values"`
	Columns   []string     `yaml:"columns"`
	Select    *Select      `yaml:"select"`
}

// Model returns the statement model of the section.
func (i *Insert) Model() (*query.Insert, error) {
	m := query.NewInsert().
		SetIntoTable(i.Into.model()).
		SetColumns(i.Columns...)
	m.With = withModel(i.With, i.Recursive)
	for _, v := range i.Values {
		if v.Expression {
			m.AddValueExpression(v.Column, fmt.Sprint(v.Value))
			continue
		}
		m.AddValueWithType(v.Column, v.Value, v.Type)
	}
	if i.Select != nil {
		s, err := i.Select.Model()
		if err != nil {
			return nil, errors.Wrap(err, "insert select")
		}
		m.SetSelect(s)
	}
	return m, nil
}

// Update is the update section of a document. Joins attach to the target
// table, FromJoins to From.
type Update struct {
	With      []CTE        `yaml:"with"`
	Recursive bool         `yaml:"recursive"`
	Table     Table        `yaml:"table"`
	Joins     []Join       `yaml:"joins"`
	Sets      []Assignment `yaml:"sets"`
	From      *Table       `yaml:"from"`
	FromJoins []Join       `yaml:"from_joins"`
	Where     []Condition  `yaml:"where"`
}

// Model returns the statement model of the section. A duplicate set column
// is an error.
func (u *Update) Model() (*query.Update, error) {
	m := query.NewUpdate().SetTableSource(u.Table.model())
	m.With = withModel(u.With, u.Recursive)
	if err := addJoins(m.Table, u.Joins); err != nil {
		return nil, err
	}
	for _, s := range u.Sets {
		if s.Expression {
			m.AddSetExpression(s.Column, fmt.Sprint(s.Value))
			continue
		}
		m.AddSetWithType(s.Column, s.Value, s.Type)
	}
	if err := m.Err(); err != nil {
		return nil, err
	}
	if u.From != nil {
		m.SetFromTable(u.From.model())
	}
	if len(u.FromJoins) > 0 {
		if u.From == nil {
			return nil, errors.New("update from_joins without from")
		}
		if err := addJoins(m.From, u.FromJoins); err != nil {
			return nil, err
		}
	}
	wheres, err := conditionModels(u.Where)
	if err != nil {
		return nil, errors.Wrap(err, "where")
	}
	m.AddWhereCondition(wheres...)
	return m, nil
}

// Delete is the delete section of a document.
type Delete struct {
	With      []CTE       `yaml:"with"`
	Recursive bool        `yaml:"recursive"`
	From      Table       `yaml:"from"`
	Joins     []Join      `yaml:"joins"`
	Where     []Condition `yaml:"where"`
}

// Model returns the statement model of the section.
func (d *Delete) Model() (*query.Delete, error) {
	m := query.NewDelete().SetFromTable(d.From.model())
	m.With = withModel(d.With, d.Recursive)
	if err := addJoins(m.From, d.Joins); err != nil {
		return nil, err
	}
	wheres, err := conditionModels(d.Where)
	if err != nil {
		return nil, errors.Wrap(err, "where")
	}
	m.AddWhereCondition(wheres...)
	return m, nil
}
