// Package stub provides placeholder panes that stand in for a real pane
// before it exists.
//
// A [Registry] creates one [Stub] per selector and hands out a [Handle].
// Callers hold on to the Handle and use it like any pane. Until a real item
// is attached with [Stub.SetRealItem], the Handle answers from the stub's
// own state. Afterwards every member the real item provides is served by
// the real item, except GetElement and Destroy, which always belong to the
// stub.
//
// Member resolution on a Handle follows three tiers:
//  1. stub-owned members (Stub, GetElement, Destroy) resolve to the stub;
//  2. members the attached real item provides resolve to the real item;
//  3. anything else resolves to the stub's own member, or to nothing.
//
// Typed Handle methods apply the tiers through optional capability
// interfaces such as [Titled]. [Handle.Lookup] applies them to arbitrary
// member names and returns bound method values.
package stub
